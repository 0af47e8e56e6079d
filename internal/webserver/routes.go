package webserver

import (
	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/controller"
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers, printers *i18n.Printers) {
	api := app.Group("/api")
	api.Get("/rsvps", controllers.Rsvps.List)
	api.Post("/rsvps", controllers.Rsvps.Create)

	app.Get("/:lang", SetLanguage(printers), controllers.Home.Index)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, printers)
	})
}
