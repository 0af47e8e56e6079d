package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/infrastructure"
	"go.uber.org/zap"
)

var version string = "unknown"

func main() {
	var input CLIInput

	ctx := kong.Parse(&input,
		kong.Name("birthday-rsvp"),
		kong.Description("Invitation page and RSVP collector for a single celebration."),
		kong.Vars{"version": version},
	)

	logger, err := infrastructure.NewLogger(input.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := ctx.Run(logger); err != nil {
		logger.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
