package infrastructure

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

const senderName = "Birthday RSVP"

type SMTP struct {
	Server   string
	Port     int
	User     string
	Password string
}

func (s *SMTP) Send(address, subject, body string) error {
	m := s.compose(address, subject, body)

	return s.send(m)
}

func (s *SMTP) From() string {
	return s.User
}

func (s *SMTP) compose(address, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.User, senderName))
	m.SetHeader("To", address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return m
}

func (s *SMTP) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email through %s:%d: %w", s.Server, s.Port, err)
	}

	return nil
}
