package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/runlog/internal/model"
)

// marshalRecords converts the collection to the JSON array stored under the
// collection key. An empty collection is "[]", never "null".
func marshalRecords(records []model.Record) (string, error) {
	if records == nil {
		records = []model.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalRecords parses the stored JSON array. "null" reads as empty.
func unmarshalRecords(data string) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
