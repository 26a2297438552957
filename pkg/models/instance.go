package models

import "encoding/json"

// Metadata carries a record's provenance fields through to evaluation,
// unchanged from the input.
type Metadata struct {
	SID       string          `json:"sid"`
	Sentence  string          `json:"sentence"`
	RawULF    json.RawMessage `json:"raw_ulf,omitempty"`
	AMR       json.RawMessage `json:"amr,omitempty"`
	ParsedULF json.RawMessage `json:"parsed_ulf,omitempty"`
}

// Instance is one training example produced from a Record. Instances are
// never mutated after conversion; the batching layer only reads them.
type Instance struct {
	Words     []string `json:"words"`
	Tense     []string `json:"tense"`
	Class     []string `json:"class"`
	Multisent bool     `json:"multisent"`
	Metadata  Metadata `json:"metadata"`
}
