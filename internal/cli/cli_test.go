package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCSS = `.header{background:#0d1117;color:#c9d1d9}.btn{background:#238636;color:#fff}a{color:#58a6ff}`

func writeCSS(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.css")
	require.NoError(t, os.WriteFile(path, []byte(testCSS), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestThemeCommandText(t *testing.T) {
	stdout, _, err := execute(t, "theme", writeCSS(t), "--flavor", "mocha", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, stdout, "flavor:    mocha")
	require.Contains(t, stdout, "background.primary")
	require.Contains(t, stdout, "text.primary")
}

func TestThemeCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "theme", writeCSS(t), "--flavor", "latte", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"flavor": "latte"`)
	require.Contains(t, stdout, `"roles"`)
	require.Contains(t, stdout, `"hex"`)
}

func TestThemeCommandRejectsUnknownFlavor(t *testing.T) {
	_, _, err := execute(t, "theme", writeCSS(t), "--flavor", "vanilla", "--format", "text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown flavor")
}

func TestThemeCommandRejectsUnknownAccent(t *testing.T) {
	_, _, err := execute(t, "theme", writeCSS(t), "--flavor", "mocha", "--accent", "chartreuse", "--format", "text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown accent")
}

func TestSignatureCommandText(t *testing.T) {
	stdout, _, err := execute(t, "signature", writeCSS(t), "--format", "text", "--domain", "github.com")
	require.NoError(t, err)
	require.Contains(t, stdout, "domain:           github.com")
	require.Contains(t, stdout, "mode:             dark")
	require.Contains(t, stdout, "suggested accent:")
}

func TestSignatureCommandJSONWithPreview(t *testing.T) {
	stdout, _, err := execute(t, "signature", writeCSS(t), "--format", "json", "--preview")
	require.NoError(t, err)
	require.Contains(t, stdout, `"colorProfile"`)
	require.Contains(t, stdout, "semantic roles", "preview must render after JSON output")
}

func TestAccentsCommand(t *testing.T) {
	stdout, _, err := execute(t, "accents", "--flavor", "mocha")
	require.NoError(t, err)
	require.Contains(t, stdout, "mocha:")
	require.Contains(t, stdout, "mauve")
	require.Contains(t, stdout, "bi:")
	require.Contains(t, stdout, "co:")
}
