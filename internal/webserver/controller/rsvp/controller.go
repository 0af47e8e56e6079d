package rsvp

import (
	"io"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/infrastructure"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type rsvpsRepository interface {
	Create(rsvp *model.Rsvp) error
	List() ([]model.Rsvp, error)
}

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type renderer interface {
	Render(out io.Writer, name string, binding interface{}, layout ...string) error
}

type translator interface {
	T(lang, key string, values ...any) string
	Match(acceptLanguage string) string
}

type Config struct {
	// NotifyAddress receives an email for every new rsvp. Leave empty to disable.
	NotifyAddress string
	// HostName greets the recipient of notification emails.
	HostName string
	// NotifyLang is the language notification emails are written in.
	NotifyLang string
}

type Controller struct {
	repository rsvpsRepository
	sender     Sender
	renderer   renderer
	translator translator
	logger     *zap.Logger
	config     Config
	sanitizer  *bluemonday.Policy
}

// NewController returns a new instance of the rsvps controller
func NewController(repository rsvpsRepository, sender Sender, renderer renderer, translator translator, logger *zap.Logger, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		sender:     sender,
		renderer:   renderer,
		translator: translator,
		logger:     logger,
		config:     cfg,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (r *Controller) notifies() bool {
	if r.config.NotifyAddress == "" {
		return false
	}
	_, disabled := r.sender.(*infrastructure.NoEmail)
	return !disabled
}
