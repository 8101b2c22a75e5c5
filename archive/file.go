package archive

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tomasbasham/frontdesk"
)

// DefaultPath is the archive file used when none is configured.
const DefaultPath = "peopleAttended.dat"

// Ensure File implements [frontdesk.Archive].
var _ frontdesk.Archive = (*File)(nil)

// File is an append-only archive of fixed-width records. Records are stored
// back to back with no header or delimiter.
type File struct {
	path string
}

// NewFile creates a [File] archive at path.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: filepath.Clean(path)}
}

// Path returns the location of the archive file.
func (f *File) Path() string {
	return f.path
}

// Load reads every complete record in file order. A missing file is an empty
// archive. A trailing partial record is ignored.
func (f *File) Load(ctx context.Context) ([]frontdesk.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %s", f.path)
	}
	defer file.Close()

	var (
		people []frontdesk.Person
		r      = bufio.NewReader(file)
		buf    = make([]byte, RecordSize)
	)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return people, nil
			}
			return nil, errors.Wrapf(err, "read archive %s", f.path)
		}

		p, err := UnmarshalRecord(buf)
		if err != nil {
			return nil, errors.Wrapf(err, "decode record %d of %s", len(people)+1, f.path)
		}
		people = append(people, p)
	}
}

// Append writes people to the end of the archive, creating it if needed.
// Failure to open or write the file is reported as
// [frontdesk.ErrStorageUnavailable].
func (f *File) Append(ctx context.Context, people []frontdesk.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(people) == 0 {
		return nil
	}

	buf := make([]byte, 0, len(people)*RecordSize)
	for _, p := range people {
		b, err := MarshalRecord(p)
		if err != nil {
			return err
		}
		buf = append(buf, b...)
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return errors.Wrapf(frontdesk.ErrStorageUnavailable, "open archive %s: %v", f.path, err)
	}

	if err := appendRecords(file, buf); err != nil {
		file.Close()
		return errors.Wrapf(frontdesk.ErrStorageUnavailable, "write archive %s: %v", f.path, err)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(frontdesk.ErrStorageUnavailable, "close archive %s: %v", f.path, err)
	}
	return nil
}

// appendFile is the part of *os.File used to append a batch of records.
type appendFile interface {
	io.Writer
	Stat() (os.FileInfo, error)
	Truncate(size int64) error
}

// appendRecords writes buf to the end of file. A failed write is rolled back
// by truncating to the previous size so the file only ever holds whole
// records.
func appendRecords(file appendFile, buf []byte) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}

	if _, err := file.Write(buf); err != nil {
		if terr := file.Truncate(info.Size()); terr != nil {
			return errors.Wrapf(err, "truncate to %d bytes: %v", info.Size(), terr)
		}
		return err
	}
	return nil
}
