package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/event"
	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver"
	"github.com/birthday-invite/gaurav-dawande/internal/webserver/infrastructure"
	"go.uber.org/zap"
)

const fallbackLanguage = "en"

func (s *ServeCmd) Run(logger *zap.Logger) error {
	ev, err := event.Load(s.EventFile)
	if err != nil {
		return err
	}

	db, err := infrastructure.Connect(s.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := infrastructure.Close(db); err != nil {
			logger.Error("database could not be closed", zap.Error(err))
		}
	}()

	printers, err := i18n.NewPrinters(webserver.TranslationsFS(), fallbackLanguage)
	if err != nil {
		return err
	}

	engine, err := infrastructure.TemplateEngine(webserver.ViewsFS(), printers)
	if err != nil {
		return err
	}

	cfg := webserver.Config{
		Version:       version,
		Event:         ev,
		NotifyAddress: s.NotifyAddress,
		HostName:      s.HostName,
	}

	controllers := webserver.SetupControllers(cfg, db, s.sender(logger), engine, printers, logger)
	app := webserver.New(cfg, engine, controllers, printers, logger)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("version", version),
			zap.Int("port", s.Port),
			zap.String("event", ev.Title),
			zap.Time("starts_at", ev.Start()),
		)
		listenErr <- app.Listen(fmt.Sprintf(":%d", s.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

func (s *ServeCmd) sender(logger *zap.Logger) webserver.Sender {
	if s.SmtpServer == "" || s.SmtpUser == "" || s.SmtpPassword == "" {
		if s.NotifyAddress != "" {
			logger.Warn("notify address set but SMTP is not configured, notifications disabled")
		}
		return &infrastructure.NoEmail{}
	}
	return &infrastructure.SMTP{
		Server:   s.SmtpServer,
		Port:     s.SmtpPort,
		User:     s.SmtpUser,
		Password: s.SmtpPassword,
	}
}
