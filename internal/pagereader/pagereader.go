// Package pagereader provides the single I/O primitive the reverse-tail
// engine is built on: filling a caller-owned buffer from an absolute
// file offset, looping over short reads, and telling clean end-of-data
// apart from a genuine I/O failure.
package pagereader

import (
	"errors"
	"io"
	"os"

	"github.com/dball/logtail/internal/apperrors"
)

// Status reports the outcome of a ReadFull call.
type Status int

const (
	// StatusFull means length bytes were placed in the buffer.
	StatusFull Status = iota
	// StatusShort means fewer than length bytes were available; this is
	// a clean, silent termination, not an error (see spec §7's
	// ShortReadAtEOF).
	StatusShort
)

// PageReader fills pages from one open, read-only file handle.
type PageReader struct {
	file *os.File
	name string
	size int64
}

// Open opens name read-only and snapshots its length. The snapshot is
// taken once; a file growing or shrinking underneath a live search is
// not re-observed.
func Open(name string) (*PageReader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFileNotFound, err.Error())
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, apperrors.Wrap(apperrors.ErrFileNotFound, err.Error())
	}
	if info.IsDir() {
		f.Close()
		return nil, apperrors.Wrap(apperrors.ErrFileNotFound, name+" is a directory")
	}
	return &PageReader{file: f, name: name, size: info.Size()}, nil
}

// Size returns the file length snapshotted at Open time.
func (r *PageReader) Size() int64 {
	return r.size
}

// Close releases the underlying file handle.
func (r *PageReader) Close() error {
	return r.file.Close()
}

// ReadFull fills buf[:length] starting at absolute offset position,
// looping over short reads from the underlying handle. It returns
// StatusFull once length bytes have landed in buf, StatusShort (with a
// nil error) the moment a read returns zero bytes before length is
// reached, and a non-nil error — wrapping apperrors.ErrIO — for any
// read failure that isn't a clean EOF.
func (r *PageReader) ReadFull(buf []byte, position int64, length int) (Status, error) {
	if length == 0 {
		return StatusFull, nil
	}
	total := 0
	for total < length {
		n, err := r.file.ReadAt(buf[total:length], position+int64(total))
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				if total == length {
					return StatusFull, nil
				}
				return StatusShort, nil
			}
			return StatusShort, apperrors.Wrapf(apperrors.ErrIO, "reading %s at offset %d: %v", r.name, position+int64(total), err)
		}
		if n == 0 {
			return StatusShort, nil
		}
	}
	return StatusFull, nil
}
