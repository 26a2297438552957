// Package fixtures generates synthetic JSON-lines ULF datasets for tests
// and local experimentation.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/tokenizers"
)

var tenseTags = []string{"pres", "past", "pres-part", "past-part", "No Tense"}
var classTags = []string{"n", "v", "d", "pro", "adj", "adv", "p"}

// GenerateFixtureData writes train/dev/test JSONL splits of synthetic
// records under outputDir. fixtureCount sizes the train split; dev and test
// each get a tenth.
func GenerateFixtureData(fixtureCount int, outputDir string) error {
	fakerGlobal := gofakeit.NewUnlocked(0)
	gofakeit.SetGlobalFaker(fakerGlobal)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	splits := map[string]int{
		"train.jsonl": fixtureCount,
		"dev.jsonl":   fixtureCount/10 + 1,
		"test.jsonl":  fixtureCount/10 + 1,
	}
	for name, count := range splits {
		if err := writeSplit(filepath.Join(outputDir, name), count); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

func writeSplit(path string, count int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for i := 0; i < count; i++ {
		if err := enc.Encode(GenerateRecord()); err != nil {
			return err
		}
	}
	return nil
}

// GenerateRecord builds one synthetic record. Roughly one record in five has
// no tense/class annotation, mirroring partially annotated corpora.
func GenerateRecord() *models.Record {
	sentence := gofakeit.Sentence(gofakeit.Number(3, 12))
	words := tokenizers.Texts(tokenizers.NewWhitespaceTokenizer().Tokenize(sentence))

	rec := &models.Record{
		SID:      uuid.New().String(),
		Sentence: sentence,
		Words:    words,
	}

	if gofakeit.Number(0, 4) > 0 {
		rec.Tense = randomTags(tenseTags, len(words))
		rec.Class = randomTags(classTags, len(words))
	}
	return rec
}

func randomTags(tags []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = tags[gofakeit.Number(0, len(tags)-1)]
	}
	return out
}
