package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newskit/pkg/email"
)

func TestSendParamsValidate(t *testing.T) {
	t.Parallel()

	valid := email.SendParams{
		SendTo:   "reader@example.com",
		Subject:  "Weekly",
		BodyHTML: "<p>hi</p>",
	}

	tests := []struct {
		name    string
		mutate  func(*email.SendParams)
		wantErr bool
	}{
		{
			name:   "valid params",
			mutate: func(p *email.SendParams) {},
		},
		{
			name:   "optional fields may be set",
			mutate: func(p *email.SendParams) { p.Tag = "newsletter"; p.UnsubscribeURL = "https://x.example/u" },
		},
		{
			name:    "missing recipient",
			mutate:  func(p *email.SendParams) { p.SendTo = "" },
			wantErr: true,
		},
		{
			name:    "whitespace recipient",
			mutate:  func(p *email.SendParams) { p.SendTo = "   " },
			wantErr: true,
		},
		{
			name:    "recipient without domain",
			mutate:  func(p *email.SendParams) { p.SendTo = "reader@" },
			wantErr: true,
		},
		{
			name:    "recipient without local part",
			mutate:  func(p *email.SendParams) { p.SendTo = "@example.com" },
			wantErr: true,
		},
		{
			name:    "recipient is not an address",
			mutate:  func(p *email.SendParams) { p.SendTo = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "missing subject",
			mutate:  func(p *email.SendParams) { p.Subject = "" },
			wantErr: true,
		},
		{
			name:    "missing body",
			mutate:  func(p *email.SendParams) { p.BodyHTML = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "news@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewPostmarkClient(valid)
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	tests := []struct {
		name   string
		mutate func(*email.Config)
	}{
		{"missing server token", func(c *email.Config) { c.PostmarkServerToken = "" }},
		{"missing account token", func(c *email.Config) { c.PostmarkAccountToken = "" }},
		{"missing sender email", func(c *email.Config) { c.SenderEmail = "" }},
		{"malformed sender email", func(c *email.Config) { c.SenderEmail = "not-an-email" }},
		{"malformed reply-to email", func(c *email.Config) { c.ReplyToEmail = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			_, err := email.NewPostmarkClient(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}

	t.Run("must variant panics on invalid config", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			email.MustNewPostmarkClient(email.Config{})
		})
		assert.NotPanics(t, func() {
			email.MustNewPostmarkClient(valid)
		})
	})
}
