package webserver_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/infrastructure"
)

func TestNotificationIsSentForNewRsvps(t *testing.T) {
	db := connect(t)
	cfg := testConfig(time.Now().Add(time.Hour))
	cfg.NotifyAddress = "host@example.com"
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, cfg)

	smtpMock.Wg.Add(1)
	response, _ := postRsvp(t, app, `{"name":"Ada","guestCount":2,"status":"attending","message":"<b>See you</b> & cheers"}`, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("Wrong status code received, expected %d, got %d", http.StatusCreated, response.StatusCode)
	}
	smtpMock.Wg.Wait()

	sent := smtpMock.Sent()
	if len(sent) != 1 {
		t.Fatalf("Expected one email to be sent, got %d", len(sent))
	}
	email := sent[0]
	if email.Address != "host@example.com" {
		t.Errorf("Wrong recipient, expected host@example.com, got %s", email.Address)
	}
	if email.Subject != "New RSVP from Ada" {
		t.Errorf("Wrong subject, got %s", email.Subject)
	}
	for _, expected := range []string{"Hi Gaurav,", "No email provided", "Accepted", "See you &amp; cheers"} {
		if !strings.Contains(email.Body, expected) {
			t.Errorf("Expected body to contain %q, got %s", expected, email.Body)
		}
	}
	if strings.Contains(email.Body, "<b>") {
		t.Errorf("Expected markup to be stripped from the message, got %s", email.Body)
	}
}

func TestNotificationFailureDoesNotAffectResponse(t *testing.T) {
	db := connect(t)
	cfg := testConfig(time.Now().Add(time.Hour))
	cfg.NotifyAddress = "host@example.com"
	smtpMock := &infrastructure.SMTPMock{Fail: true}
	app := bootstrapApp(db, smtpMock, cfg)

	smtpMock.Wg.Add(1)
	response, body := postRsvp(t, app, `{"name":"Grace","guestCount":1,"status":"declined"}`, "")
	smtpMock.Wg.Wait()

	if response.StatusCode != http.StatusCreated {
		t.Errorf("Wrong status code received, expected %d, got %d", http.StatusCreated, response.StatusCode)
	}
	if body["name"] != "Grace" {
		t.Errorf("Expected stored rsvp in response, got %v", body)
	}
}

func TestNoNotificationWithoutAddress(t *testing.T) {
	db := connect(t)
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock, testConfig(time.Now().Add(time.Hour)))

	response, _ := postRsvp(t, app, `{"name":"Ada","guestCount":1}`, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("Wrong status code received, expected %d, got %d", http.StatusCreated, response.StatusCode)
	}

	time.Sleep(50 * time.Millisecond)
	if sent := smtpMock.Sent(); len(sent) != 0 {
		t.Errorf("Expected no email to be sent, got %d", len(sent))
	}
}
