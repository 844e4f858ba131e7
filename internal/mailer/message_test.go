package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageHeadersAndBody(t *testing.T) {
	raw, err := buildMessage(Email{
		FromName: "GoFromA2zAfrica",
		From:     "no-reply@gofroma2zafrica.com",
		To:       []string{"support@gofroma2zafrica.com"},
		ReplyTo:  "ada@example.com",
		Subject:  "Support request from Ada",
		TextBody: "My order never arrived.",
	}, "gofroma2zafrica.com")

	require.NoError(t, err)
	assert.Contains(t, raw, "From: GoFromA2zAfrica <no-reply@gofroma2zafrica.com>\r\n")
	assert.Contains(t, raw, "To: support@gofroma2zafrica.com\r\n")
	assert.Contains(t, raw, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, raw, "Subject: Support request from Ada\r\n")
	assert.Contains(t, raw, "Message-ID: <")
	assert.Contains(t, raw, "@gofroma2zafrica.com>")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, raw, "My order never arrived.\r\n")
}

func TestBuildMessageValidation(t *testing.T) {
	base := Email{
		From:     "a@b.c",
		To:       []string{"x@y.z"},
		Subject:  "s",
		TextBody: "b",
	}

	for name, mutate := range map[string]func(*Email){
		"missing from":      func(e *Email) { e.From = "" },
		"missing recipient": func(e *Email) { e.To = nil },
		"missing subject":   func(e *Email) { e.Subject = "" },
		"missing body":      func(e *Email) { e.TextBody = "" },
	} {
		e := base
		mutate(&e)
		_, err := buildMessage(e, "d")
		assert.Error(t, err, name)
	}
}

func TestMockRecordsSends(t *testing.T) {
	m := &Mock{}

	err := m.Send(context.Background(), Email{
		From: "a@b.c", To: []string{"x@y.z"}, Subject: "s", TextBody: "b",
	})
	require.NoError(t, err)

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, "s", last.Subject)
}
