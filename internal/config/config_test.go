package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(f *File, name string) (Function, bool) {
	for _, fn := range f.Functions {
		if fn.Name == name {
			return fn, true
		}
	}

	return Function{}, false
}

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, CurrentVersion, f.Version)
	assert.False(t, f.AllowExcess)
	require.NoError(t, f.Validate())

	fn, ok := lookup(f, "safe-printf/printf.Sprintf")
	require.True(t, ok)
	assert.True(t, fn.Wrapped)
	assert.Equal(t, 0, fn.FormatIndex)

	fn, ok = lookup(f, "(*safe-printf/printf.Checker).Fprintf")
	require.True(t, ok)
	assert.Equal(t, 1, fn.FormatIndex)

	fn, ok = lookup(f, "safe-printf/printf.SprintfAny")
	require.True(t, ok)
	assert.False(t, fn.Wrapped)

	_, ok = lookup(f, "fmt.Printf")
	assert.False(t, ok)
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
allow_excess: true
jobs: 2
functions:
  - name: fmt.Fprintf
    format_index: 1
  - name: example.com/log.Infof
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.True(t, f.AllowExcess)
	assert.Equal(t, 2, f.Jobs)
	assert.Equal(t, []Function{
		{Name: "fmt.Fprintf", FormatIndex: 1},
		{Name: "example.com/log.Infof", FormatIndex: 0},
	}, f.Functions)
}

func TestParse_YAMLDefaultsFunctions(t *testing.T) {
	f, err := Parse([]byte(`version: "1"`))
	require.NoError(t, err)
	assert.Equal(t, DefaultFunctions(), f.Functions)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestParse_YAMLUnknownKey(t *testing.T) {
	_, err := Parse([]byte("alow_excess: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field alow_excess not found")

	_, err = Parse([]byte("functions:\n  - name: fmt.Printf\n    format_idx: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field format_idx not found")
}

func TestFmtFunctions(t *testing.T) {
	for _, fn := range FmtFunctions() {
		assert.True(t, fn.Stringers, fn.Name)
		assert.True(t, fn.ForeignVerbs, fn.Name)
	}

	f, err := ParseTOML([]byte("[[functions]]\nname = \"fmt.Printf\"\nforeign_verbs = true\n"))
	require.NoError(t, err)
	assert.True(t, f.Functions[0].ForeignVerbs)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
version = "1"
allow_excess = false
jobs = 8

[[functions]]
name = "(*safe-printf/printf.Checker).Sprintf"
format_index = 0
wrapped = true
`)

	f, err := ParseTOML(data)
	require.NoError(t, err)
	assert.Equal(t, 8, f.Jobs)
	require.Len(t, f.Functions, 1)
	assert.True(t, f.Functions[0].Wrapped)
}

func TestParseTOML_UnknownKey(t *testing.T) {
	_, err := ParseTOML([]byte(`verbose = true`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "verbose"`)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ParseTOML([]byte(`alow_excess = true`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "alow_excess" (did you mean "allow_excess"?)`)

	_, err = ParseTOML([]byte("[[functions]]\nname = \"fmt.Printf\"\nformat_idx = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `(did you mean "format_index"?)`)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"version", `version: "2"`, ErrUnsupportedVersion},
		{"missing name", "functions:\n  - format_index: 1\n", ErrInvalidFunction},
		{"negative index", "functions:\n  - name: fmt.Printf\n    format_index: -1\n", ErrInvalidFunction},
		{"duplicate", "functions:\n  - name: fmt.Printf\n  - name: fmt.Printf\n", ErrInvalidFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("jobs: -1"))
	require.Error(t, err)

	_, err = Parse([]byte("functions: [oops"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "safe-printf.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("allow_excess: true\n"), 0o644))

	f, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, f.AllowExcess)

	tomlPath := filepath.Join(dir, "safe-printf.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("allow_excess = true\njobs = 3\n"), 0o644))

	f, err = LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Jobs)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	orig := Default()
	orig.AllowExcess = true
	orig.AddFunctions(FmtFunctions()...)

	data, err := Marshal(orig)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestAddFunctions(t *testing.T) {
	f := &File{Functions: []Function{{Name: "fmt.Printf"}}}
	f.AddFunctions(FmtFunctions()...)
	f.AddFunctions(FmtFunctions()...)

	assert.Len(t, f.Functions, len(FmtFunctions()))

	_, err := finish(f)
	require.NoError(t, err)
}
