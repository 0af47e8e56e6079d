package home

import (
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/event"
)

type Controller struct {
	event     event.Event
	languages []string
	now       func() time.Time
}

func NewController(ev event.Event, languages []string) *Controller {
	return &Controller{
		event:     ev,
		languages: languages,
		now:       time.Now,
	}
}
