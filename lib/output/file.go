package output

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteFile renders the segmenter into the named file, truncating it.
// An empty file name writes to stdout.
func WriteFile(file string, s *Segmenter) error {
	if file == "" {
		return Write(os.Stdout, s)
	}
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "could not open output file %s", file)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not write output file %s", file)
	}
	return errors.Wrapf(f.Close(), "could not close output file %s", file)
}

func Write(w io.Writer, s *Segmenter) error {
	_, err := io.WriteString(w, s.String())
	return errors.Wrap(err, "writing sql")
}
