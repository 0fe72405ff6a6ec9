package smtp_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lichen911/support-ticket/core/email"
	"github.com/lichen911/support-ticket/integration/email/smtp"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	validConfig := smtp.Config{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "tickets@example.com",
		Password: "password",
		TLSMode:  "tls",
	}

	tests := []struct {
		name    string
		config  smtp.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  validConfig,
			wantErr: false,
		},
		{
			name: "empty host",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Host = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Host is required",
		},
		{
			name: "invalid port - zero",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Port = 0
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name: "invalid port - too high",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Port = 70000
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name: "empty username",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Username = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Username must be a valid email address",
		},
		{
			name: "username not an address",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Username = "not-an-email"
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Username must be a valid email address",
		},
		{
			name: "empty password",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Password = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Password is required",
		},
		{
			name: "invalid TLS mode",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "ssl"
				return cfg
			}(),
			wantErr: true,
			errMsg:  "TLSMode must be tls, starttls, or plain",
		},
		{
			name: "valid TLS mode - starttls",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "starttls"
				return cfg
			}(),
			wantErr: false,
		},
		{
			name: "valid TLS mode - plain",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "plain"
				return cfg
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := smtp.New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			client := smtp.MustNew(smtp.Config{
				Host:     "smtp.example.com",
				Port:     465,
				Username: "tickets@example.com",
				Password: "password",
				TLSMode:  "tls",
			})
			assert.NotNil(t, client)
		})
	})

	t.Run("invalid config panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			smtp.MustNew(smtp.Config{})
		})
	})
}

func TestSend_ParamsValidation(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(smtp.Config{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "tickets@example.com",
		Password: "password",
		TLSMode:  "tls",
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		params email.SendParams
	}{
		{
			name: "empty To",
			params: email.SendParams{
				Subject:  "Test",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "invalid To",
			params: email.SendParams{
				To:       "invalid-email",
				Subject:  "Test",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "empty subject",
			params: email.SendParams{
				To:       "support@example.com",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "empty body",
			params: email.SendParams{
				To:      "support@example.com",
				Subject: "Test",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := client.Send(context.Background(), tt.params)
			assert.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
		})
	}
}

func TestSend_ConnectionError(t *testing.T) {
	t.Parallel()

	// Reserve a port and release it so the dial is refused.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	client, err := smtp.New(smtp.Config{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "tickets@example.com",
		Password: "password",
		TLSMode:  "plain",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = client.Send(ctx, email.SendParams{
		To:       "support@example.com",
		Subject:  "Request support for store 42",
		BodyHTML: "<p>Printer broken</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrSendFailed)
	assert.Contains(t, err.Error(), "failed to connect to SMTP server")
}

func TestSend_CancelledContext(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(smtp.Config{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "tickets@example.com",
		Password: "password",
		TLSMode:  "tls",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = client.Send(ctx, email.SendParams{
		To:       "support@example.com",
		Subject:  "Test",
		BodyHTML: "<p>Test</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrSendFailed)
}

func TestClient_ImplementsSender(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(smtp.Config{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "tickets@example.com",
		Password: "password",
		TLSMode:  "tls",
	})
	require.NoError(t, err)

	var _ email.Sender = client
}
