package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxlabs/chirp/config"
	"github.com/voxlabs/chirp/pkg/provider/google"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("AUDIO_OUTPUT_DIR", dir)
	t.Setenv("PORT", "8123")

	cfg, err := config.Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8123", cfg.Address)
	require.Equal(t, dir, cfg.Store.Dir())

	_, err = cfg.Synthesizer("")
	require.NoError(t, err)

	_, err = cfg.Synthesizer(google.DefaultModel)
	require.NoError(t, err)
}

func TestParseMissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AUDIO_OUTPUT_DIR", t.TempDir())

	_, err := config.Parse("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "audio")

	t.Setenv("TEST_GEMINI_KEY", "secret-key")

	data := `
address: ":9000"
token: api-secret
output: ` + output + `

synthesizers:
  speech:
    type: google
    token: ${TEST_GEMINI_KEY}
    model: gemini-2.5-flash-preview-tts
    limit: 10

  fallback:
    type: openai
    token: sk-test
    model: tts-1
`

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Address)
	require.NotNil(t, cfg.Authorizer)
	require.Equal(t, output, cfg.Store.Dir())

	_, err = cfg.Synthesizer("speech")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("fallback")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("missing")
	require.Error(t, err)
}

func TestParseFileUnknownType(t *testing.T) {
	dir := t.TempDir()

	data := `
output: ` + dir + `

synthesizers:
  speech:
    type: nope
`

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := config.Parse(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid synthesizer type")
}
