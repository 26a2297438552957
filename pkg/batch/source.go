package batch

import (
	"io"

	"github.com/ulfnlp/ulfdata/pkg/models"
)

// Source yields instances until io.EOF. *reader.Iterator satisfies it.
type Source interface {
	Next() (*models.Instance, error)
}

func each(src Source, fn func(*models.Instance) error) error {
	for {
		inst, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(inst); err != nil {
			return err
		}
	}
}

// SliceSource adapts an in-memory instance slice to a Source.
type SliceSource struct {
	insts []*models.Instance
	next  int
}

func NewSliceSource(insts []*models.Instance) *SliceSource {
	return &SliceSource{insts: insts}
}

func (s *SliceSource) Next() (*models.Instance, error) {
	if s.next >= len(s.insts) {
		return nil, io.EOF
	}
	inst := s.insts[s.next]
	s.next++
	return inst, nil
}
