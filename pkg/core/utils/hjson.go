// Package utils holds small parsing helpers shared across packages.
package utils

import (
	"encoding/json"
	"fmt"

	hjson "github.com/hjson/hjson-go/v4"
)

// ParseHJSON parses human-friendly JSON (comments, unquoted keys, optional
// commas) and returns canonical JSON. Hand-maintained reference overrides
// are written in HJSON so analysts can annotate entries in place.
func ParseHJSON(data []byte) (string, error) {
	var result map[string]interface{}
	if err := hjson.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("parse hjson: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("re-encode hjson: %w", err)
	}
	return string(out), nil
}

// ParseHJSONToStruct parses HJSON directly into a Go struct.
func ParseHJSONToStruct(data []byte, schema interface{}) error {
	if err := hjson.Unmarshal(data, schema); err != nil {
		return fmt.Errorf("parse hjson: %w", err)
	}
	return nil
}
