// Package output serializes generated records to disk as a JSON array or
// as JSON Lines. The full dataset is encoded in memory before the file is
// created, so a failed run never leaves a partial artifact behind.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heartmarshall/langmix/internal/domain"
)

// Format selects the on-disk serialization.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
)

func (f Format) String() string { return string(f) }

func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatJSONL:
		return true
	}
	return false
}

// Write serializes records to path in the given format, creating parent
// directories as needed. Non-ASCII text is written as-is.
func Write(path string, format Format, records []domain.Record) error {
	if !format.IsValid() {
		return fmt.Errorf("unknown output format %q: %w", format, domain.ErrInvalidConfig)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	switch format {
	case FormatJSONL:
		for i, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode record %d: %w", i, err)
			}
		}
	case FormatJSON:
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
