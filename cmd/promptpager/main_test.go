package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptpager/processor"
)

// isolate runs the command in an empty directory with a clean environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_API_VERSION", "PROMPTPAGER_PROVIDER"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("PROMPTPAGER_LOG_LEVEL", "error")
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// fakeGemini answers every generateContent call with text.
func fakeGemini(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		part, err := json.Marshal(map[string]string{"text": text})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"candidates":[{"content":{"role":"model","parts":[%s]},"finishReason":"STOP"}]}`, part)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStrip(t *testing.T) {
	isolate(t)

	out, err := execute(t, "# Hello\n\nThis is **bold** text.", "strip")

	require.NoError(t, err)
	assert.Equal(t, "Hello This is bold text.\nestimated tokens: 6 (limit 4096)\n", out)
}

func TestStrip_TooLarge(t *testing.T) {
	isolate(t)
	t.Setenv("PROMPTPAGER_MAX_INPUT_TOKENS", "2")

	out, err := execute(t, "# a long enough prompt", "strip")

	var tooLarge *processor.InputTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, 2, tooLarge.Limit)
	assert.Equal(t, 5, tooLarge.Estimate)
	assert.Equal(t, "a long enough prompt\nestimated tokens: 5 (limit 2)\n", out)
}

func TestRun_MissingKey(t *testing.T) {
	isolate(t)

	_, err := execute(t, "hello", "run")

	var cfgErr *processor.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "api_key", cfgErr.Field)
}

func TestRun_SinglePage(t *testing.T) {
	isolate(t)
	srv := fakeGemini(t, "The quick brown fox jumps over lazy dogs")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", srv.URL)

	out, err := execute(t, "**Hi**", "run", "-")

	require.NoError(t, err)
	assert.Equal(t, "--- page 1/1 ---\nThe quick brown fox jumps over lazy dogs\n", out)
}

func TestRun_FromFileWithEnvFile(t *testing.T) {
	isolate(t)
	long := strings.TrimSpace(strings.Repeat(strings.Repeat("w", 399)+" ", 12))
	srv := fakeGemini(t, long)

	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("GEMINI_API_KEY=k\nGEMINI_BASE_URL="+srv.URL+"\n"), 0o600))
	prompt := filepath.Join(dir, "prompt.md")
	require.NoError(t, os.WriteFile(prompt, []byte("# Long answer please"), 0o600))

	out, err := execute(t, "", "--env-file", envFile, "run", prompt)

	require.NoError(t, err)
	assert.Contains(t, out, "--- page 1/2 ---\n")
	assert.Contains(t, out, "--- page 2/2 ---\n")
}

func TestRun_WatchNeedsFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "run", "--watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}

func TestSchema(t *testing.T) {
	isolate(t)
	t.Setenv("PROMPTPAGER_LOG_FORMAT", "bogus")

	out, err := execute(t, "", "schema")

	require.NoError(t, err, "schema does not load configuration")
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "max_input_tokens")
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[limits]\nmax_input_tokens = 1\nmax_output_tokens = 1\n"), 0o600))

	out, err := execute(t, "abcd", "--config", path, "strip")

	require.NoError(t, err)
	assert.Contains(t, out, "estimated tokens: 1 (limit 1)")
}

func TestPrintPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPages(&buf, []string{"a b", "c"}))
	assert.Equal(t, "--- page 1/2 ---\na b\n--- page 2/2 ---\nc\n", buf.String())
}
