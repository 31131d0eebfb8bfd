// Package recordfile reads and writes records as JSON, YAML or TOML files
// while keeping key order wherever the format allows it.
package recordfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/kvedit/internal/record"
)

// Format is a file encoding for records.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultIndent is used when Write is given an empty indent.
const DefaultIndent = "  "

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or toml)", name)
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s: no file extension", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("cannot detect format of %s: %w", path, err)
	}
	return f, nil
}

// Read reads the record at path, detecting the format from its extension.
// Returns an empty record if the file doesn't exist.
func Read(path string) (record.Record, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return record.Record{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rec, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rec, nil
}

// Decode parses data in format f. Blank input is the empty record.
func Decode(data []byte, f Format) (record.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return record.Record{}, nil
	}
	switch f {
	case FormatJSON:
		return record.Parse(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Encode renders rec in format f. The output ends with a newline.
func Encode(rec record.Record, f Format, indent string) ([]byte, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	if rec == nil {
		rec = record.Record{}
	}
	switch f {
	case FormatJSON:
		text, err := record.Indent(rec, indent)
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return []byte(text + "\n"), nil
	case FormatYAML:
		return encodeYAML(rec, len(indent))
	case FormatTOML:
		return encodeTOML(rec, indent)
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Write writes rec to path in format f, creating parent directories.
func Write(path string, rec record.Record, f Format, indent string) error {
	data, err := Encode(rec, f, indent)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteDetected writes rec to path in the format its extension names.
func WriteDetected(path string, rec record.Record, indent string) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	return Write(path, rec, f, indent)
}
