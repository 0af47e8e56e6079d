package infrastructure

import (
	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger, or a human readable development
// logger at debug level when verbose is set.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
