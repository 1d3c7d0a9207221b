package checkpointer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Naming determines how the files written by a Checkpointer are named
type Naming string

const (
	// Overwrite writes every checkpoint to the same file
	Overwrite Naming = "overwrite"

	// Enumerate appends a counter to the name of each checkpoint
	Enumerate Naming = "enumerate"

	// Timestamp appends the time of the checkpoint in nanoseconds since
	// January 1, 1970
	Timestamp Naming = "timestamp"
)

// Filenamer returns a function generating the name of each checkpoint
// file from the base filename path, whose extension is kept last
func (n Naming) Filenamer(path string) (func() string, error) {
	extension := filepath.Ext(path)
	name := strings.TrimSuffix(path, extension)

	switch Naming(strings.ToLower(string(n))) {
	case Overwrite, "":
		return func() string { return path }, nil

	case Enumerate:
		return FilenameEnumerator(0, name, extension), nil

	case Timestamp:
		return FileTimer(name, extension), nil
	}
	return nil, fmt.Errorf("filenamer: unknown naming %q", n)
}

// fileEnumerator enumerates filenames
type fileEnumerator struct {
	i         int
	name      string
	extension string
}

func (f *fileEnumerator) filename() string {
	f.i++
	return fmt.Sprintf("%v%v%v", f.name, f.i, f.extension)
}

// FilenameEnumerator returns a function which will return filenames
// with a counter integer suffix, one higher on each call than on the
// previous one, starting at start + 1
func FilenameEnumerator(start int, filename, extension string) func() string {
	enum := fileEnumerator{i: start, name: filename, extension: extension}
	return enum.filename
}

// FileTimer returns a function which will append to a filename the
// number of nanoseconds since January 1, 1970.
func FileTimer(filename, extension string) func() string {
	return func() string {
		return fmt.Sprintf("%v-%v%v", filename, time.Now().UnixNano(),
			extension)
	}
}
