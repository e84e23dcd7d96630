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
)

// FileNames are the configuration files Find looks for, in order.
var FileNames = []string{"dgrok.toml", "dgrok.yaml", "dgrok.yml"}

// ErrUnknownFormat is returned for a file that is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is the encoding of a configuration file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads and validates a configuration file. Keys the file leaves out
// get their defaults.
func Load(path string) (Options, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := Decode(data, format)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Options, error) {
	var opts Options
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Options{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return Options{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Options{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	opts.applyDefaults()
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Encode renders opts in the given format, e.g. for `dgrok config init`.
func Encode(opts Options, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return buf.Bytes(), nil
}

// Find walks up from startDir looking for one of FileNames.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads path when given, otherwise the nearest file found from
// startDir, otherwise the defaults. It returns the file actually used, or
// "" for the defaults.
func Resolve(path, startDir string) (Options, string, error) {
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Options{}, "", err
		}
		if !ok {
			return Defaults(), "", nil
		}
		path = found
	}
	opts, err := Load(path)
	return opts, path, err
}
