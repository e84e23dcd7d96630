package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dgrok.toml", `
search_paths = ["src/**", "lib"]
custom_defines = ["DEBUG", "MYDEFINE"]
delphi_version_define = "VER185"
true_if_conditions = ["IF Declared(Foo)"]
compiler_options_on = "R"
parser_thread_count = 3
`)
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**", "lib"}, opts.SearchPaths)
	assert.Equal(t, DefaultFileMasks, opts.FileMasks)
	assert.Equal(t, "VER185", opts.DelphiVersionDefine)
	assert.Equal(t, 3, opts.ParserThreadCount)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dgrok.yaml", `
file_masks: ["*.pas"]
false_if_conditions:
  - IFDEF LINUX
compiler_options_off: "io"
`)
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.pas"}, opts.FileMasks)
	assert.Equal(t, []string{"IFDEF LINUX"}, opts.FalseIfConditions)
	assert.Equal(t, runtime.NumCPU(), opts.ParserThreadCount)
}

func TestLoadEmptyYAMLGivesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dgrok.yml", "")
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), opts)
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, file, text string
	}{
		{"unknown toml key", "a.toml", "serach_paths = []"},
		{"unknown yaml key", "a.yaml", "serach_paths: []"},
		{"bad option letter", "b.toml", `compiler_options_on = "R1"`},
		{"negative threads", "c.yaml", "parser_thread_count: -2"},
		{"broken toml", "d.toml", "search_paths = ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.text))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeFile(t, dir, "dgrok.ini", ""))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeRoundTrip(t *testing.T) {
	opts := Defaults()
	opts.CustomDefines = []string{"DEBUG"}
	opts.CompilerOptionsOn = "RQ"
	for _, format := range []Format{FormatTOML, FormatYAML} {
		data, err := Encode(opts, format)
		require.NoError(t, err)
		got, err := Decode(data, format)
		require.NoError(t, err, "%s:\n%s", format, data)
		assert.Equal(t, opts, got, string(format))
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "dgrok.yaml", "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	opts, used, err := Resolve("", nested)
	require.NoError(t, err)
	assert.Equal(t, want, used)
	assert.Equal(t, Defaults(), opts)
}

func TestCreateDefines(t *testing.T) {
	opts := Options{
		CustomDefines:       []string{"DEBUG", " "},
		DelphiVersionDefine: "VER185",
		CompilerOptionsOn:   "r",
		CompilerOptionsOff:  "I",
		FalseIfConditions:   []string{"IFDEF DEBUG", "IFDEF RELEASE"},
		TrueIfConditions:    []string{"IFDEF RELEASE"},
	}
	d := opts.CreateDefines()

	for _, sym := range []string{"WIN32", "MSWINDOWS", "CPU386", "CONDITIONALEXPRESSIONS", "debug", "VER185"} {
		assert.True(t, d.IsDefined(sym), sym)
	}
	v, ok := d.Number("CompilerVersion")
	require.True(t, ok)
	assert.InDelta(t, 18.5, v, 1e-9)

	lookup := func(text string) bool {
		t.Helper()
		value, ok := d.LookupDirective(text)
		require.True(t, ok, text)
		return value
	}
	assert.True(t, lookup("IFOPT R+"))
	assert.False(t, lookup("IFOPT R-"))
	assert.True(t, lookup("IFOPT I-"))
	assert.False(t, lookup("IFOPT I+"))
	assert.False(t, lookup("IFOPT Z+"))
	assert.False(t, lookup("IFOPT Z-"))

	// forced true wins over forced false
	assert.False(t, lookup("IFDEF DEBUG"))
	assert.True(t, lookup("IFDEF RELEASE"))
}

func TestCreateDefinesSeedsEveryOption(t *testing.T) {
	d := Defaults().CreateDefines()
	for option := 'A'; option <= 'Z'; option++ {
		for _, sign := range []string{"+", "-"} {
			_, ok := d.LookupDirective("IFOPT " + string(option) + sign)
			assert.True(t, ok, "IFOPT %c%s", option, sign)
		}
	}
}
