package fatstat

import (
	"fmt"
	"io"

	"github.com/aligator/gofat/checkpoint"
	"github.com/spf13/afero"
)

// Volume is a read-only handle on a raw FAT32 image, addressed by absolute
// byte offsets. It is the only mutable resource of a session and must be
// closed exactly once.
type Volume struct {
	file afero.File
	size int64
}

// OpenVolume opens the image at path on the given filesystem.
func OpenVolume(fs afero.Fs, path string) (*Volume, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrIO)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, checkpoint.Wrap(err, ErrIO)
	}

	return &Volume{file: file, size: stat.Size()}, nil
}

// ReadAt returns exactly length bytes starting at offset. A read outside of
// the image is an immediate ErrIO, there is no short-read mode.
func (v *Volume) ReadAt(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > v.size {
		return nil, checkpoint.Wrap(
			fmt.Errorf("read of %d bytes at offset %d outside image of %d bytes", length, offset, v.size),
			ErrIO)
	}

	buf := make([]byte, length)
	if _, err := v.file.ReadAt(buf, offset); err != nil && err != io.EOF {
		return nil, checkpoint.Wrap(fmt.Errorf("read at offset %d: %w", offset, err), ErrIO)
	}

	return buf, nil
}

// Size is the byte length of the underlying image.
func (v *Volume) Size() int64 {
	return v.size
}

func (v *Volume) Close() error {
	return v.file.Close()
}
