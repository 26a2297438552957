package models

import "encoding/json"

// Record is a single entry of a JSON-lines ULF dataset. Only SID and
// Sentence are required; the annotation fields are carried verbatim when
// present. When Tense or Class is present it is aligned one-to-one with
// Words.
type Record struct {
	SID       string          `json:"sid"`
	Sentence  string          `json:"sentence"`
	RawULF    json.RawMessage `json:"raw_ulf,omitempty"`
	AMR       json.RawMessage `json:"amr,omitempty"`
	ParsedULF json.RawMessage `json:"parsed_ulf,omitempty"`
	Words     []string        `json:"words,omitempty"`
	Tense     []string        `json:"tense,omitempty"`
	Class     []string        `json:"class,omitempty"`
}

// Validate checks the required fields of a record.
func (r *Record) Validate() error {
	if r.SID == "" {
		return NewMalformedRecordError("sid")
	}
	if r.Sentence == "" {
		return NewMalformedRecordError("sentence")
	}
	return nil
}

// RawULFString returns the raw_ulf annotation as a plain string when it is a
// JSON string. The second return is false when the field is absent or
// structured.
func (r *Record) RawULFString() (string, bool) {
	if len(r.RawULF) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.RawULF, &s); err != nil {
		return "", false
	}
	return s, true
}
