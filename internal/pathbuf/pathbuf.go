// Package pathbuf provides a bounded, in-place mutable path value.
//
// A Buffer holds one path in a fixed-capacity byte array and exposes the active
// value through a start and end offset. Suffixes are appended by moving end
// forward, parents are reached by moving end back to the previous separator, and
// prefixes are dropped by moving start forward. Nothing is reallocated after New.
package pathbuf

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// MaxPath is the longest path accepted as a starting value.
	MaxPath = 4096

	// Capacity leaves room for the suffixes appended during a search ("/.git", "/HEAD").
	Capacity = MaxPath + 16

	// Separator is the path separator used for ascent.
	Separator = '/'
)

var (
	// ErrOverflow indicates that a value would not fit in the buffer
	ErrOverflow = errors.New("path exceeds buffer capacity")

	// ErrRange indicates an offset outside the active value
	ErrRange = errors.New("offset out of range")
)

// Buffer is a path with explicit start and end offsets into fixed storage.
// Invariant: 0 <= start <= end <= Capacity.
type Buffer struct {
	buf   [Capacity]byte
	start int
	end   int
}

// New returns a buffer initialised from path. Trailing separators are dropped,
// except for the root itself.
func New(path string) (*Buffer, error) {
	if len(path) > MaxPath {
		return nil, fmt.Errorf("%w: %d bytes", ErrOverflow, len(path))
	}
	b := &Buffer{}
	b.end = copy(b.buf[:], path)
	for b.end > 1 && b.buf[b.end-1] == Separator {
		b.end--
	}
	return b, nil
}

// String returns the active value.
func (b *Buffer) String() string {
	return string(b.buf[b.start:b.end])
}

// Bytes returns the active value. The slice aliases the buffer and is only
// valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.start:b.end]
}

// Len returns the length of the active value.
func (b *Buffer) Len() int {
	return b.end - b.start
}

// AtRoot reports whether the active value is the filesystem root (or empty).
func (b *Buffer) AtRoot() bool {
	n := b.Len()
	return n == 0 || (n == 1 && b.buf[b.start] == Separator)
}

// HasPrefix reports whether the active value begins with prefix.
func (b *Buffer) HasPrefix(prefix string) bool {
	return bytes.HasPrefix(b.Bytes(), []byte(prefix))
}

// Append moves end forward over suffix.
func (b *Buffer) Append(suffix string) error {
	if b.end+len(suffix) > Capacity {
		return fmt.Errorf("%w: appending %q", ErrOverflow, suffix)
	}
	b.end += copy(b.buf[b.end:], suffix)
	return nil
}

// Unappend moves end back by n bytes, never past start.
func (b *Buffer) Unappend(n int) {
	b.end -= min(n, b.Len())
}

// Ascend moves end back to the previous separator, turning the active value
// into its lexical parent. It returns false when there is no parent.
func (b *Buffer) Ascend() bool {
	if b.AtRoot() {
		return false
	}
	i := bytes.LastIndexByte(b.Bytes(), Separator)
	switch {
	case i < 0:
		return false
	case i == 0:
		// keep the root separator
		b.end = b.start + 1
	default:
		b.end = b.start + i
	}
	return true
}

// Load replaces the whole buffer with line.
func (b *Buffer) Load(line []byte) error {
	if len(line) > Capacity {
		return fmt.Errorf("%w: %d bytes", ErrOverflow, len(line))
	}
	b.start = 0
	b.end = copy(b.buf[:], line)
	return nil
}

// Shift moves start forward by n bytes.
func (b *Buffer) Shift(n int) error {
	if n < 0 || n > b.Len() {
		return fmt.Errorf("%w: shift by %d of %d", ErrRange, n, b.Len())
	}
	b.start += n
	return nil
}

// Limit caps the active value at n bytes. Non-positive n is ignored.
func (b *Buffer) Limit(n int) {
	if n > 0 && b.Len() > n {
		b.end = b.start + n
	}
}
