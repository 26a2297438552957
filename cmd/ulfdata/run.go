package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/ulfnlp/ulfdata/config"
	"github.com/ulfnlp/ulfdata/pkg/batch"
	"github.com/ulfnlp/ulfdata/pkg/models"
	"github.com/ulfnlp/ulfdata/pkg/reader"
	"github.com/ulfnlp/ulfdata/pkg/vocab"
)

// run is the entrypoint for the ulfdata CLI
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring ulfdata: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting ulfdata version %s", config.VersionString)

	config.SetLogLevel(cfg)

	if inputPath != "" {
		cfg.Data.Input = inputPath
	}
	if batchSize > 0 {
		cfg.Data.BatchSize = batchSize
	}
	if cfg.Data.Input == "" {
		log.Fatal("data.input must be set (or pass --input)")
	}

	r, err := reader.NewReaderFromConfig(cfg)
	if err != nil {
		log.Fatalf("Error building reader: %s", err)
	}

	v, instanceCount := buildVocabulary(r, cfg.Data.Input)
	log.Infof(
		"Built vocabulary from %d instances: %d tokens, %d tense labels, %d class labels",
		instanceCount,
		v.Size(vocab.DefaultTokenNamespace),
		v.Size(batch.TenseNamespace),
		v.Size(batch.ClassNamespace),
	)

	emitBatches(r, v, cfg, instanceCount)
}

// handleCLIOptions handles CLI options that don't require the reader to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// buildVocabulary makes the first pass over the dataset, accumulating every
// token and label.
func buildVocabulary(r *reader.Reader, path string) (*vocab.Vocabulary, int) {
	it, err := r.Read(path)
	if err != nil {
		log.Fatalf("Error opening dataset: %s", err)
	}
	defer it.Close()

	src := &countingSource{src: it}
	v, err := batch.BuildVocabulary(src, r.Converter().Indexers())
	if err != nil {
		log.Fatalf("Error building vocabulary: %s", err)
	}
	return v, src.count
}

// emitBatches makes the second pass, printing one summary line per batch.
func emitBatches(r *reader.Reader, v *vocab.Vocabulary, cfg *config.Config, instanceCount int) {
	it, err := r.Read(cfg.Data.Input)
	if err != nil {
		log.Fatalf("Error opening dataset: %s", err)
	}
	defer it.Close()

	totalBatches := (instanceCount + cfg.Data.BatchSize - 1) / cfg.Data.BatchSize

	uiprogress.Start()
	bar := uiprogress.AddBar(totalBatches).AppendCompleted().PrependElapsed()

	batcher := batch.NewBatcher(cfg.Data.BatchSize, v, r.Converter().Indexers())
	batchNum := 0
	for {
		b, err := batcher.Next(it)
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error batching dataset: %s", err)
		}
		batchNum++
		bar.Incr()
		printBatch(batchNum, b)
	}
	uiprogress.Stop()

	fmt.Printf("Read %d instances in %d batches\n", instanceCount, batchNum)
}

func printBatch(num int, b *batch.Batch) {
	maxLen := 0
	for _, rows := range b.TokenIDs {
		for _, row := range rows {
			if len(row) > maxLen {
				maxLen = len(row)
			}
		}
	}
	fmt.Printf("batch %d: size=%d padded_len=%d sids=%v\n", num, b.Size, maxLen, sids(b.Metadata))
}

func sids(meta []models.Metadata) []string {
	out := make([]string, len(meta))
	for i, m := range meta {
		out[i] = m.SID
	}
	return out
}

// countingSource counts instances as they pass through.
type countingSource struct {
	src   batch.Source
	count int
}

func (s *countingSource) Next() (*models.Instance, error) {
	inst, err := s.src.Next()
	if err == nil {
		s.count++
	}
	return inst, err
}
