package infrastructure

import (
	"errors"
	"sync"
)

var ErrMockSend = errors.New("mock send failure")

// SMTPMock records sent messages. Callers expecting a send must Add to Wg
// before triggering it and Wait afterwards.
type SMTPMock struct {
	Fail bool
	Wg   sync.WaitGroup

	mu   sync.Mutex
	sent []SentEmail
}

type SentEmail struct {
	Address string
	Subject string
	Body    string
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrMockSend
	}
	s.sent = append(s.sent, SentEmail{Address: address, Subject: subject, Body: body})
	return nil
}

func (s *SMTPMock) From() string {
	return "rsvp@example.com"
}

func (s *SMTPMock) Sent() []SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentEmail(nil), s.sent...)
}
