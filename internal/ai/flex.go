// file: internal/ai/flex.go
// version: 1.0.0
// guid: f6a7b8c9-d0e1-2f3a-4b5c-6d7e8f9a0b1c

package ai

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexString decodes a JSON string, number, or null into a plain string.
// Model output does not reliably type its fields, so every field of the
// intermediate record is coerced through this before validation; the raw
// payload shape never reaches the canonical metadata type.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	// Numbers: keep integers undecorated, trim float noise like 2.0.
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if n == float64(int64(n)) {
			*f = flexString(strconv.FormatInt(int64(n), 10))
		} else {
			*f = flexString(strconv.FormatFloat(n, 'f', -1, 64))
		}
		return nil
	}
	// Anything else (object, array, bool) is dropped rather than leaked.
	*f = ""
	return nil
}

func (f flexString) String() string { return string(f) }

// flexStrings decodes a JSON array of strings, a single string, or a
// comma-separated string into a slice.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = nil
		return nil
	}
	if data[0] == '[' {
		var items []flexString
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(it.String()); s != "" {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}
	var single flexString
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	s := single.String()
	if s == "" {
		*f = nil
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*f = out
	return nil
}
