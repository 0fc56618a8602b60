package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"safe-printf/internal/common"
)

const (
	CurrentVersion = "1"
	PrintfPkgPath  = "safe-printf/printf"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidFunction    = errors.New("invalid function entry")
)

// File is the checker configuration.
type File struct {
	Version     string     `yaml:"version" toml:"version"`
	AllowExcess bool       `yaml:"allow_excess" toml:"allow_excess"`
	Jobs        int        `yaml:"jobs" toml:"jobs"`
	Functions   []Function `yaml:"functions" toml:"functions"`
}

// Function is a printf-like function whose calls are checked.
type Function struct {
	Name        string `yaml:"name" toml:"name"`
	FormatIndex int    `yaml:"format_index" toml:"format_index"`
	Wrapped     bool   `yaml:"wrapped,omitempty" toml:"wrapped,omitempty"`
	// Stringers lets values implementing String() string or Error() string
	// satisfy %s whatever their kind, as fmt does.
	Stringers bool `yaml:"stringers,omitempty" toml:"stringers,omitempty"`
	// ForeignVerbs reports verbs outside %d %f %g %s as an unchecked call
	// instead of an invalid specifier. fmt accepts %v, %q, %w and the rest.
	ForeignVerbs bool `yaml:"foreign_verbs,omitempty" toml:"foreign_verbs,omitempty"`
}

// DefaultFunctions returns the printf package entry points.
func DefaultFunctions() []Function {
	var fns []Function

	for _, prefix := range []string{PrintfPkgPath + ".", "(*" + PrintfPkgPath + ".Checker)."} {
		fns = append(fns,
			Function{Name: prefix + "Check", FormatIndex: 0, Wrapped: true},
			Function{Name: prefix + "Fprintf", FormatIndex: 1, Wrapped: true},
			Function{Name: prefix + "Sprintf", FormatIndex: 0, Wrapped: true},
			Function{Name: prefix + "Printf", FormatIndex: 0, Wrapped: true},
			Function{Name: prefix + "CheckAny", FormatIndex: 0},
			Function{Name: prefix + "FprintfAny", FormatIndex: 1},
			Function{Name: prefix + "SprintfAny", FormatIndex: 0},
		)
	}

	return fns
}

// FmtFunctions returns the fmt printf family. Calls using only %d %f %g %s
// are checked; calls with other verbs are reported as unchecked.
func FmtFunctions() []Function {
	return []Function{
		{Name: "fmt.Printf", FormatIndex: 0, Stringers: true, ForeignVerbs: true},
		{Name: "fmt.Sprintf", FormatIndex: 0, Stringers: true, ForeignVerbs: true},
		{Name: "fmt.Fprintf", FormatIndex: 1, Stringers: true, ForeignVerbs: true},
		{Name: "fmt.Errorf", FormatIndex: 0, Stringers: true, ForeignVerbs: true},
		{Name: "fmt.Appendf", FormatIndex: 1, Stringers: true, ForeignVerbs: true},
	}
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)
	return f
}

// LoadFile loads and parses a config file, YAML or TOML by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	default:
		return Parse(data)
	}
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return finish(&f)
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, unknownKeyError(undecoded[0])
	}

	return finish(&f)
}

var (
	fileKeys     = []string{"version", "allow_excess", "jobs", "functions"}
	functionKeys = []string{"name", "format_index", "wrapped", "stringers", "foreign_verbs"}
)

func unknownKeyError(key toml.Key) error {
	candidates := fileKeys
	if len(key) > 1 {
		candidates = functionKeys
	}

	last := key[len(key)-1]
	if hint, ok := common.Closest(last, candidates); ok {
		return fmt.Errorf("failed to parse config TOML: unknown key %q (did you mean %q?)", key.String(), hint)
	}

	return fmt.Errorf("failed to parse config TOML: unknown key %q", key.String())
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

func finish(f *File) (*File, error) {
	applyDefaults(f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if len(f.Functions) == 0 {
		f.Functions = DefaultFunctions()
	}
}

// Validate checks the file for unusable entries.
func (f *File) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, f.Version)
	}

	if f.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", f.Jobs)
	}

	seen := make(map[string]bool, len(f.Functions))
	for i, fn := range f.Functions {
		switch {
		case fn.Name == "":
			return fmt.Errorf("%w: functions[%d] has no name", ErrInvalidFunction, i)
		case fn.FormatIndex < 0:
			return fmt.Errorf("%w: %s has negative format_index", ErrInvalidFunction, fn.Name)
		case seen[fn.Name]:
			return fmt.Errorf("%w: %s listed twice", ErrInvalidFunction, fn.Name)
		}

		seen[fn.Name] = true
	}

	return nil
}

// AddFunctions appends fns that are not configured yet.
func (f *File) AddFunctions(fns ...Function) {
	seen := make(map[string]bool, len(f.Functions))
	for _, fn := range f.Functions {
		seen[fn.Name] = true
	}

	for _, fn := range fns {
		if !seen[fn.Name] {
			f.Functions = append(f.Functions, fn)
			seen[fn.Name] = true
		}
	}
}
