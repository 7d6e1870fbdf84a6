package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smileScript = `# two clicks and a stroke
click 50 50
toggle mouth[2] 3 5
drag 50 406 68 406 86 406
`

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flags to prevent accumulation between tests
	verbose = false
	configPath = filepath.Join(t.TempDir(), "config.toml")
	exportScript, exportFormat, exportOutput = "", "", ""
	renderScript, renderOutput = "", ""
	showScript = ""
	configForce = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "face.pf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLocateE2E(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "first eye origin", args: []string{"locate", "50", "50"}, want: "eye[0] row=0 col=0"},
		{name: "mouth cell", args: []string{"locate", "437", "461"}, want: "mouth[2] row=3 col=5"},
		{name: "nose", args: []string{"locate", "514.5", "50"}, want: "nose row=0 col=0"},
		{name: "above the face", args: []string{"locate", "400", "10"}, want: "none"},
		{name: "between eyes", args: []string{"locate", "195", "60"}, want: "none"},
		{name: "not a number", args: []string{"locate", "NaN", "NaN"}, want: "none"},
		{name: "bad coordinate", args: []string{"locate", "x", "10"}, wantErr: true},
		{name: "missing coordinate", args: []string{"locate", "10"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err, out)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestExportE2E(t *testing.T) {
	t.Run("empty face to stdout", func(t *testing.T) {
		out, err := execute(t, "export", "-o", "-")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, `{"eye":[[[false,false,`), out)
		assert.NotContains(t, out, "true")
	})

	t.Run("single click", func(t *testing.T) {
		script := writeScript(t, "click 50 50\n")
		out, err := execute(t, "export", "--script", script, "-o", "-")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, `{"eye":[[[true,false,`), out)
		assert.Equal(t, 1, strings.Count(out, "true"))
	})

	t.Run("hex to file", func(t *testing.T) {
		script := writeScript(t, smileScript)
		path := filepath.Join(t.TempDir(), "smile.txt")
		_, err := execute(t, "export", "--script", script, "--format", "hex", "-o", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "eye[0]: 80 00 00 00 00 00 00 00")
		assert.Contains(t, string(data), "mouth[0]: e0 00 00 00 00 00 00 00")
		assert.Contains(t, string(data), "mouth[2]: 00 00 00 04 00 00 00 00")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "export", "--format", "yaml", "-o", "-")
		assert.Error(t, err)
	})

	t.Run("script error", func(t *testing.T) {
		script := writeScript(t, "toggle mouth[9] 0 0\n")
		_, err := execute(t, "export", "--script", script, "-o", "-")
		assert.Error(t, err)
	})
}

func TestRenderE2E(t *testing.T) {
	script := writeScript(t, smileScript)
	path := filepath.Join(t.TempDir(), "smile.png")
	_, err := execute(t, "render", "--script", script, "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 700, img.Bounds().Dy())

	_, err = execute(t, "render")
	assert.Error(t, err, "output flag is required")
}

func TestShowE2E(t *testing.T) {
	script := writeScript(t, smileScript)
	out, err := execute(t, "show", "--script", script)
	require.NoError(t, err)

	for _, want := range []string{"eye[0] 1", "eye[1] 0", "nose 0", "mouth[0] 3", "mouth[2] 1", "5/448 lit", glyphLit} {
		assert.Contains(t, out, want)
	}
}

func TestConfigE2E(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err, "init must not overwrite without --force")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	for _, want := range []string{"[canvas]", "cell_size = 16", "[palette]", `lit = "#ff0000"`, "protogen_face_data.txt"} {
		assert.Contains(t, out, want)
	}
}
