package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func configured() Config {
	return Config{Host: "smtp.example.com", Port: 587, Username: "user", Password: "pass", FromEmail: "noreply@humancapital.az"}
}

func TestSendApplicationStatus(t *testing.T) {
	fake := &fakeSender{}
	svc := &EmailService{cfg: configured(), dialer: fake}

	err := svc.SendApplicationStatus(context.Background(), StatusEmailData{
		To:            "aysel@example.com",
		CandidateName: "Aysel",
		JobTitle:      "Frontend Developer",
		CompanyName:   "Acme",
		Status:        "accepted",
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"aysel@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Your application for Frontend Developer was accepted"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Frontend Developer")
}

func TestSendSkippedWhenNotConfigured(t *testing.T) {
	fake := &fakeSender{}
	svc := &EmailService{cfg: Config{}, dialer: fake}

	assert.False(t, svc.IsConfigured())
	assert.NoError(t, svc.SendApplicationStatus(context.Background(), StatusEmailData{To: "a@b.c"}))
	assert.Empty(t, fake.sent)
}

func TestSendPropagatesDialError(t *testing.T) {
	svc := &EmailService{cfg: configured(), dialer: &fakeSender{err: errors.New("connection refused")}}

	err := svc.SendApplicationStatus(context.Background(), StatusEmailData{To: "a@b.c", Status: "rejected"})
	assert.ErrorContains(t, err, "connection refused")
}
