package webserver

import (
	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/controller/home"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/controller/rsvp"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/model"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Controllers struct {
	Home  *home.Controller
	Rsvps *rsvp.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender, engine *html.Engine, printers *i18n.Printers, logger *zap.Logger) Controllers {
	rsvpsRepository := &model.RsvpRepository{DB: db}

	rsvpsCfg := rsvp.Config{
		NotifyAddress: cfg.NotifyAddress,
		HostName:      cfg.HostName,
		NotifyLang:    printers.Languages()[0],
	}

	return Controllers{
		Home:  home.NewController(cfg.Event, printers.Languages()),
		Rsvps: rsvp.NewController(rsvpsRepository, sender, engine, printers, logger, rsvpsCfg),
	}
}
