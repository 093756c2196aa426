package block

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when a snapshot does not start with the
	// dtype block magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic number")

	// ErrInvalidVersion is returned for snapshot format versions this
	// package cannot read.
	ErrInvalidVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch indicates that the snapshot payload does not
	// match its recorded checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrCorruptSnapshot indicates a structurally damaged snapshot.
	ErrCorruptSnapshot = errors.New("corrupt snapshot payload")
)

// ErrLengthMismatch indicates that the source and destination planes have
// different sample counts.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d samples, got %d", e.Expected, e.Actual)
}

// ErrMaskOutOfRange indicates a mask bit beyond the plane bounds.
type ErrMaskOutOfRange struct {
	Index uint32
	Len   int
}

func (e *ErrMaskOutOfRange) Error() string {
	return fmt.Sprintf("mask index %d out of range for plane of %d samples", e.Index, e.Len)
}

// ErrTypeMismatch indicates that a snapshot was written with a different
// sample type than the one it is being read as.
type ErrTypeMismatch struct {
	Want string
	Got  string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("sample type mismatch: snapshot holds %q, reading as %q", e.Got, e.Want)
}
