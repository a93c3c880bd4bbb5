package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var (
	ErrConfigRead  = errors.New("error reading config")
	ErrConfigParse = errors.New("error parsing config")
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

// Document is a two level section -> key -> value configuration file
type Document map[string]map[string]string

// Load reads path from fs and parses it as a Document. YAML and INI content
// are both accepted, see DetectFormat.
func Load(fs afero.Fs, path string) (Document, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	return Parse(content, DetectFormat(path, content))
}

func Parse(content []byte, format Format) (Document, error) {
	v := viper.New()
	v.SetConfigType(string(format))
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	doc := Document{}
	for section, raw := range v.AllSettings() {
		values, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a section", ErrConfigParse, section)
		}

		doc[section] = map[string]string{}
		for key, val := range values {
			switch val.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%w: %s.%s is not a scalar value", ErrConfigParse, section, key)
			}
			str, err := cast.ToStringE(val)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %w", ErrConfigParse, section, key, err)
			}
			doc[section][key] = str
		}
	}

	return doc, nil
}

// String returns section.key, failing with ErrConfigParse when either is absent
func (d Document) String(section string, key string) (string, error) {
	values, ok := d[strings.ToLower(section)]
	if !ok {
		return "", fmt.Errorf("%w: missing section %q", ErrConfigParse, section)
	}
	val, ok := values[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: missing key %s.%s", ErrConfigParse, section, key)
	}
	return val, nil
}

// DetectFormat picks a format from the file extension, falling back to
// sniffing the content. ansible.cfg is conventionally INI while older
// abv tooling wrote YAML under the same extension.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".ini":
		return FormatINI
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			return FormatINI
		}
		return FormatYAML
	}

	return FormatYAML
}
