package infrastructure

// NoEmail is used when no SMTP server has been configured. It accepts every
// message and delivers none.
type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
