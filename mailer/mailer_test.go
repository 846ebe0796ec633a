package mailer

import (
	"strings"
	"testing"
)

func TestVerificationEmail_EmbedsTokenLink(t *testing.T) {
	subject, body := VerificationEmail("http://localhost:5000", "tok-123")

	if !strings.Contains(subject, "Verify Your Email") {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(body, "http://localhost:5000/verify?token=tok-123") {
		t.Fatalf("body must embed the verification link, got: %q", body)
	}
}

func TestSMTPMailer_RequiresCredentials(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "", "", "noreply@example.com")

	if err := m.Send("a@x.com", "subject", "body"); err == nil {
		t.Fatalf("expected an error when smtp credentials are missing")
	}
}
