package testutils

import "strings"

// TestDatasetLines is a small, valid JSON-lines dataset covering annotated,
// unannotated and ULF-only records.
var TestDatasetLines = []string{
	`{"sid": "s1", "sentence": "This is a sentence.", "words": ["This", "is", "a", "sentence"], "tense": ["No Tense", "pres", "No Tense", "No Tense"], "class": ["pro", "v", "d", "n"]}`,
	`{"sid": "s2", "sentence": "Hello world", "words": ["Hello", "world"]}`,
	`{"sid": "s3", "sentence": "He ran home.", "raw_ulf": "(he.pro (past run.v home.adv))", "amr": {"root": "r"}}`,
}

// TestDataset joins the sample lines into one JSONL document.
func TestDataset() string {
	return strings.Join(TestDatasetLines, "\n") + "\n"
}
