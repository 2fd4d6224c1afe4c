package chartfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Format is a chart file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format for a file extension. Unknown
// extensions return "".
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}
	return ""
}

// FormatFromContentType maps an HTTP content type to a format. Anything
// that is not TOML is treated as JSON.
func FormatFromContentType(ct string) Format {
	ct = strings.ToLower(ct)
	if strings.Contains(ct, "toml") {
		return FormatTOML
	}
	return FormatJSON
}

// Sniff guesses the format of data: JSON documents start with '{'.
func Sniff(data []byte) Format {
	if b := bytes.TrimLeft(data, " \t\r\n"); len(b) > 0 && b[0] == '{' {
		return FormatJSON
	}
	return FormatTOML
}

// Decode parses data in format f. An empty format is sniffed.
func Decode(data []byte, f Format) (*Chart, error) {
	if f == "" {
		f = Sniff(data)
	}
	var c Chart
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", f)
	}
	return &c, nil
}

// Read decodes a chart from r. It does not close r.
func Read(r io.Reader, f Format) (*Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Decode(data, f)
}

// Import reads the chart file at path, choosing the format by extension.
func Import(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	c, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode serializes c in format f.
func Encode(c *Chart, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes c to w. JSON output is indented.
func Write(w io.Writer, c *Chart, f Format) error {
	switch f {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", f)
	}
	return nil
}

// Export writes c to path in the format of its extension (JSON when
// unknown).
func Export(c *Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, c, FormatFromPath(path))
}

// Canonical returns the compact JSON encoding of c, used for hashing.
func Canonical(c *Chart) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
