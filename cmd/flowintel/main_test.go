package main

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "invalid config",
			env:     map[string]string{"HTTP_PORT": "0"},
			wantErr: "load configuration",
		},
		{
			name:    "unreachable database",
			env:     map[string]string{"DATABASE_DSN": "user:pass@tcp(127.0.0.1:1)/flowintel?timeout=200ms"},
			wantErr: "connect to database",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"HTTP_PORT", "HEALTH_PORT", "DATABASE_DSN", "DATABASE_DSN_FILE"} {
				t.Setenv(key, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			log, _ := test.NewNullLogger()
			err := run(log)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
