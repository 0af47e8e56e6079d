package main

import "github.com/alecthomas/kong"

// CLIInput stores all commands, configuration flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// Verbose switches logs to a human readable, debug level output
	Verbose bool `env:"VERBOSE" default:"false" name:"verbose" help:"Output debug level logs in a human readable format"`

	Serve ServeCmd `cmd:"" default:"1" help:"Start the invitation web server."`
	List  ListCmd  `cmd:"" help:"Print the guest list of a running server."`
}

// ServeCmd holds the configuration of the web server
type ServeCmd struct {
	// DatabaseURL is either a path to a SQLite file or a postgres:// connection URL
	DatabaseURL string `env:"DATABASE_URL" default:"sqlite.db" name:"database-url" help:"Path to a SQLite file or a postgres:// connection URL"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" short:"p" default:"3000" name:"port" help:"Port number in which the webserver listens for requests"`
	// EventFile points to a YAML file with the event details. Environment variables are used if empty
	EventFile string `env:"EVENT_FILE" short:"e" name:"event-file" help:"YAML file with the event details. EVENT_* environment variables are used if not set" type:"path"`
	// SmtpServer points to the address of the send mail server
	SmtpServer string `env:"SMTP_SERVER" name:"smtp-server" help:"Address of the send mail server"`
	// SmtpPort defines the port in which the mail server listens for requests
	SmtpPort int `env:"SMTP_PORT" default:"587" name:"smtp-port" help:"Port in which the mail server listens for requests"`
	// SmtpUser holds the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER" name:"smtp-user" help:"User to authenticate against the SMTP server"`
	// SmtpPassword holds the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD" name:"smtp-password" help:"Password to authenticate against the SMTP server"`
	// NotifyAddress receives an email for every new rsvp
	NotifyAddress string `env:"NOTIFY_ADDRESS" short:"n" name:"notify-address" help:"Address that receives an email for every new rsvp. Notifications are disabled if empty"`
	// HostName is used to greet the recipient of notification emails
	HostName string `env:"HOST_NAME" default:"host" name:"host-name" help:"Name used to greet the recipient of notification emails"`
}

// ListCmd holds the configuration of the guest list command
type ListCmd struct {
	Server  string `env:"RSVP_SERVER" short:"s" default:"http://localhost:3000" name:"server" help:"Base URL of a running invitation server"`
	Timeout int    `default:"10" name:"timeout" help:"Seconds to wait for the server to answer"`
}
