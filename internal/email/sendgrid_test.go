package email

import (
	"errors"
	"testing"

	"github.com/dangerclosesec/sarpa/internal/config"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSendgrid struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSendgrid) Send(m *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, m)
	return f.response, f.err
}

func TestSendgridMessage(t *testing.T) {
	m := sendgridMessage(EmailData{
		To:           "tech@example.com",
		From:         "noreply@example.com",
		FromName:     "Sarpa CMMS",
		Subject:      "New work order",
		TemplateName: "work_order_assigned",
	}, "<p>hi</p>", "hi")

	assert.Equal(t, "noreply@example.com", m.From.Address)
	assert.Equal(t, "Sarpa CMMS", m.From.Name)
	assert.Equal(t, "New work order", m.Subject)
	require.Len(t, m.Personalizations, 1)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "tech@example.com", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "text/html", m.Content[1].Type)
	assert.Equal(t, []string{"work_order_assigned"}, m.Categories)
}

func TestSendWithSendgrid(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sendgrid.From = "noreply@example.com"

	t.Run("accepted", func(t *testing.T) {
		client := &fakeSendgrid{response: &rest.Response{StatusCode: 202}}
		s := &Service{config: cfg, provider: ProviderSendgrid, sendgridClient: client}

		require.NoError(t, s.sendWithSendgrid(EmailData{To: "a@example.com", From: cfg.Sendgrid.From}, "<p>x</p>", "x"))
		assert.Len(t, client.sent, 1)
	})

	t.Run("rejected", func(t *testing.T) {
		client := &fakeSendgrid{response: &rest.Response{StatusCode: 400, Body: "bad from"}}
		s := &Service{config: cfg, provider: ProviderSendgrid, sendgridClient: client}

		err := s.sendWithSendgrid(EmailData{To: "a@example.com", TemplateName: "welcome"}, "", "")
		assert.ErrorContains(t, err, "status 400")
	})

	t.Run("transport error", func(t *testing.T) {
		client := &fakeSendgrid{err: errors.New("connection reset")}
		s := &Service{config: cfg, provider: ProviderSendgrid, sendgridClient: client}

		err := s.sendWithSendgrid(EmailData{To: "a@example.com"}, "", "")
		assert.ErrorContains(t, err, "connection reset")
	})
}
