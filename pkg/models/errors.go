package models

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrMalformedRecord = errors.New("malformed record")
	ErrLengthMismatch  = errors.New("label length mismatch")
)

// ParseError reports a dataset line that is not valid JSON. Line is 1-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func NewParseError(line int, err error) error {
	return &ParseError{Line: line, Err: err}
}

// MalformedRecordError reports a record missing a required field or carrying
// one of the wrong shape.
type MalformedRecordError struct {
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record field %q missing or malformed", e.Field)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

func NewMalformedRecordError(field string) error {
	return &MalformedRecordError{Field: field}
}

// LengthMismatchError reports a label sequence whose length differs from the
// token count, surfaced under the strict alignment policy.
type LengthMismatchError struct {
	Field string
	Want  int
	Got   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s labels have length %d, want %d", e.Field, e.Got, e.Want)
}

func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

func NewLengthMismatchError(field string, want, got int) error {
	return &LengthMismatchError{Field: field, Want: want, Got: got}
}
