package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is a file encoding.
type Format int

const (
	// JSON is the default, human-editable encoding.
	JSON Format = iota
	// MsgPack is a compact binary encoding that also carries ±Inf.
	MsgPack
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case MsgPack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name ("json", "msgpack", "mpk") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "msgpack", "mpk", "mp":
		return MsgPack, nil
	default:
		return 0, fmt.Errorf("ParseFormat: %q: %w", name, ErrFormat)
	}
}

// FormatFromPath infers the encoding from the file extension; anything
// that is not a MessagePack extension is JSON.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return JSON
}

// Encode writes v to w. Both encodings use the json struct tags.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case MsgPack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	default:
		return fmt.Errorf("Encode: %v: %w", f, ErrFormat)
	}
}

// Decode reads v from r.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case MsgPack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag("json")
		return dec.Decode(v)
	default:
		return fmt.Errorf("Decode: %v: %w", f, ErrFormat)
	}
}

// Load reads a problem file, inferring the format from its extension.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer fh.Close()

	var f File
	if err := Decode(fh, FormatFromPath(path), &f); err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}

	return &f, nil
}

// Save writes v to path, inferring the format from its extension.
func Save(path string, v any) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := Encode(fh, FormatFromPath(path), v); err != nil {
		fh.Close()
		return fmt.Errorf("Save: %s: %w", path, err)
	}

	return fh.Close()
}
