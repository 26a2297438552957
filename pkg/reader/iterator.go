package reader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/ulfnlp/ulfdata/pkg/models"
)

// maxLineSize bounds a single dataset line; ULF/AMR annotations can be
// large.
const maxLineSize = 4 * 1024 * 1024

// Iterator walks a JSON-lines dataset one record at a time. It owns the
// underlying file handle and releases it on Close, on end of input and on
// any terminal error.
type Iterator struct {
	src    io.Closer
	sc     *bufio.Scanner
	conv   *Converter
	skip   bool
	line   int
	closed bool
}

// Read opens the dataset at path and returns a lazy iterator over its
// instances. Each call opens the file fresh.
func (r *Reader) Read(path string) (*Iterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	log.Infof("Reading dataset at %s", path)
	return r.iterate(f, f), nil
}

// ReadFrom iterates a dataset from an open stream. The iterator closes rc
// when done.
func (r *Reader) ReadFrom(rc io.ReadCloser) *Iterator {
	return r.iterate(rc, rc)
}

func (r *Reader) iterate(src io.Reader, closer io.Closer) *Iterator {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Iterator{
		src:  closer,
		sc:   sc,
		conv: r.conv,
		skip: r.onRecordError == ErrorSkip,
	}
}

// ReadAll drains the dataset into memory. Prefer Read for large files.
func (r *Reader) ReadAll(path string) ([]*models.Instance, error) {
	it, err := r.Read(path)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []*models.Instance
	for {
		inst, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
}

// Next returns the next instance. It returns io.EOF at the end of input. A
// bad line or record returns a terminal error under the abort policy and is
// logged and skipped under the skip policy. Blank lines are ignored.
func (it *Iterator) Next() (*models.Instance, error) {
	if it.closed {
		return nil, io.EOF
	}

	for it.sc.Scan() {
		it.line++
		line := bytes.TrimSpace(it.sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec models.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			parseErr := models.NewParseError(it.line, err)
			if it.skip {
				log.Warnf("skipping bad line: %v", parseErr)
				continue
			}
			it.Close()
			return nil, parseErr
		}

		inst, err := it.conv.Convert(&rec)
		if err != nil {
			if it.skip {
				log.Warnf("skipping record at line %d: %v", it.line, err)
				continue
			}
			it.Close()
			return nil, err
		}
		return inst, nil
	}

	err := it.sc.Err()
	it.Close()
	if err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Line reports the 1-based line number of the most recently scanned line.
func (it *Iterator) Line() int {
	return it.line
}

// Close releases the underlying source. It is safe to call more than once.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.src.Close()
}
