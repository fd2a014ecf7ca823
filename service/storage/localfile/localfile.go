package localfile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/abiosoft/errs"
)

// Service represents the directory which localfile.Service uses for storage.
type Service string

// Upload writes the contents of `r` to a file with the given key name. Keys
// may contain slashes; intermediate directories are created.
func (s Service) Upload(key string, r io.Reader) (string, error) {
	path := filepath.Join(string(s), filepath.FromSlash(key))

	var e errs.Group
	var fd *os.File

	e.Add(func() error {
		return os.MkdirAll(filepath.Dir(path), 0777)
	})
	e.Add(func() (err error) {
		fd, err = os.Create(path)
		return
	})
	e.Add(func() error {
		_, err := io.Copy(fd, r)
		return err
	})
	e.Add(func() error {
		err := fd.Close()
		fd = nil
		return err
	})
	e.Defer(func() {
		if fd != nil {
			fd.Close()
		}
	})
	if err := e.Exec(); err != nil {
		return "", err
	}

	return "file://" + filepath.ToSlash(path), nil
}

// Download returns a reader to the contents of the filename `key`.
func (s Service) Download(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(string(s), filepath.FromSlash(key)))
}
