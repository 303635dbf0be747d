package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapiab/open-space-toolkit-physics/errors"
)

// useConfigHome points the XDG configuration directories at empty temporary
// directories and returns the config home.
func useConfigHome(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	return home
}

func TestRun(t *testing.T) {
	useConfigHome(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: []string{"1 Jan 2018 00:00:00", "jd:2451545"},
			want: "2018-01-01 00:00:00\n2000-01-01 12:00:00\n",
		},
		{
			name: "output format",
			args: []string{"-to", "stk", "2018-07-04T09:30:00.250"},
			want: "4 Jul 2018 09:30:00.250\n",
		},
		{
			name: "modified julian date",
			args: []string{"-to", "ISO8601", "mjd:0"},
			want: "1858-11-17T00:00:00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, memfs.New(), &stdout, &stderr)
			require.NoError(t, err, stderr.String())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRun_JSON(t *testing.T) {
	useConfigHome(t)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-encoding", "json", "2018-01-01 00:00:00"}, memfs.New(), &stdout, &stderr)
	require.NoError(t, err)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "1 Jan 2018 00:00:00", results[0]["stk"])
	assert.Equal(t, 2458119.5, results[0]["julianDate"])
}

func TestRun_Config(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "ostk-time.cue", []byte(`
version:      "0.1.0"
inputFormat:  "STK"
outputFormat: "ISO8601"
`), 0o644))

	t.Run("file settings apply", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-config", "ostk-time.cue", "6 Jan 1980 00:00:00"}, fs, &stdout, &stderr)
		require.NoError(t, err, stderr.String())
		assert.Equal(t, "1980-01-06T00:00:00\n", stdout.String())
	})

	t.Run("flags override file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		args := []string{"-config", "ostk-time.cue", "-from", "auto", "-to", "Standard", "1980-01-06T00:00:00"}
		err := run(context.Background(), args, fs, &stdout, &stderr)
		require.NoError(t, err, stderr.String())
		assert.Equal(t, "1980-01-06 00:00:00\n", stdout.String())
	})

	t.Run("file input format rejects other formats", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-config", "ostk-time.cue", "1980-01-06T00:00:00"}, fs, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "ostk-time failed")
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-config", "absent.cue", "jd:2451545"}, fs, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, errors.CodeCUELoadFailed, errors.GetCode(err))
	})
}

func TestRun_InvalidInvocation(t *testing.T) {
	useConfigHome(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"no values", nil, errors.CodeInvalidInput},
		{"unknown flag", []string{"-zone", "UTC", "jd:0"}, errors.CodeInvalidInput},
		{"bad log level", []string{"-log-level", "loud", "jd:2451545"}, errors.CodeInvalidInput},
		{"bad output format", []string{"-to", "Unix", "jd:2451545"}, errors.CodeInvalidConfig},
		{"bad encoding", []string{"-encoding", "xml", "jd:2451545"}, errors.CodeInvalidConfig},
		{"unparseable value", []string{"tomorrow"}, errors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, memfs.New(), &stdout, &stderr)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_DebugLogging(t *testing.T) {
	useConfigHome(t)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-log-level", "debug", "jd:2451545"}, memfs.New(), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "converted input")
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"-h", "-help"} {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), []string{arg}, memfs.New(), &stdout, &stderr)
			require.NoError(t, err)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "Usage: ostk-time")
			assert.NotContains(t, stderr.String(), "ostk-time failed")
		})
	}
}

func TestRun_UserConfig(t *testing.T) {
	home := useConfigHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "ostk-time"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, userConfigFile), []byte(`
version:      "0.1.0"
outputFormat: "STK"
`), 0o644))

	t.Run("applies without -config", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-log-level", "info", "jd:2451545"}, memfs.New(), &stdout, &stderr)
		require.NoError(t, err, stderr.String())
		assert.Equal(t, "1 Jan 2000 12:00:00\n", stdout.String())
		assert.Contains(t, stderr.String(), "loaded configuration")
	})

	t.Run("explicit file wins", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "iso.cue", []byte(`version: "0.1.0"`+"\n"+`outputFormat: "ISO8601"`), 0o644))

		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"-config", "iso.cue", "jd:2451545"}, fs, &stdout, &stderr)
		require.NoError(t, err, stderr.String())
		assert.Equal(t, "2000-01-01T12:00:00\n", stdout.String())
	})

	t.Run("invalid file fails", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, userConfigFile), []byte(`version: "0.2.0"`), 0o644))

		var stdout, stderr bytes.Buffer
		err := run(context.Background(), []string{"jd:2451545"}, memfs.New(), &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}
