package webserver

import (
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/birthday-invite/gaurav-dawande/internal/event"
	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed embedded
var embedded embed.FS

type Config struct {
	Version       string
	Event         event.Event
	NotifyAddress string
	HostName      string
}

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

// ViewsFS returns the embedded html templates
func ViewsFS() fs.FS {
	return sub("embedded/views")
}

// TranslationsFS returns the embedded translation files
func TranslationsFS() fs.FS {
	return sub("embedded/translations")
}

func sub(dir string) fs.FS {
	subFS, err := fs.Sub(embedded, dir)
	if err != nil {
		log.Fatal(err)
	}
	return subFS
}

// New builds a new Fiber application and set up the required routes
func New(cfg Config, engine *html.Engine, controllers Controllers, printers *i18n.Printers, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(printers, logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	}))
	app.Use(RequestLogger(logger))

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(sub("embedded/css")),
	}))
	app.Use("/js", filesystem.New(filesystem.Config{
		Root: http.FS(sub("embedded/js")),
	}))

	routes(app, controllers, printers)

	return app
}

func errorHandler(printers *i18n.Printers, logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError
		lang := printers.Match(c.Get(fiber.HeaderAcceptLanguage))
		message := printers.T(lang, "Something went wrong")

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			logger.Error("unhandled error", zap.Error(err), zap.Any("request_id", c.Locals("requestid")))
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{"message": message})
		}

		title := printers.T(lang, "Something went wrong")
		if code == fiber.StatusNotFound {
			title = printers.T(lang, "Page not found")
		}

		err = c.Status(code).Render("error", fiber.Map{
			"Lang":    lang,
			"Title":   title,
			"Code":    code,
			"Version": c.App().Config().AppName,
		}, "layout")
		if err != nil {
			logger.Error("error page could not be rendered", zap.Error(err))
			// In case the Render fails
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		return nil
	}
}
