package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSecret(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good")
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(good, []byte("  from-file\n"), 0o600))
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))

	tests := []struct {
		name    string
		env     string
		file    string
		def     string
		want    string
		wantErr bool
	}{
		{name: "default", def: "fallback", want: "fallback"},
		{name: "env", env: "from-env", def: "fallback", want: "from-env"},
		{name: "file wins over env", env: "from-env", file: good, want: "from-file"},
		{name: "missing file", file: filepath.Join(dir, "nope"), wantErr: true},
		{name: "empty file", file: empty, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("FLOWINTEL_TEST_SECRET", tc.env)
			t.Setenv("FLOWINTEL_TEST_SECRET_FILE", tc.file)

			got, err := GetSecret("FLOWINTEL_TEST_SECRET", tc.def)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRedact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "***@tcp(db:3306)/flowintel", Redact("user:secret@tcp(db:3306)/flowintel"))
	assert.Equal(t, "***", Redact("no-at-sign"))
	assert.Empty(t, Redact(""))
}
