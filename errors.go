package fatstat

import "errors"

// These errors classify every failure of a parse session. All of them are
// fatal: the image is static, so nothing is retried and no partial tree is
// ever returned. Use errors.Is to check for them as they are usually
// decorated by checkpoint with the failing call site.
var (
	// ErrIO is an out-of-bounds read or a failure of the underlying image.
	ErrIO = errors.New("volume read failed")

	// ErrFormat is a boot sector that cannot describe a usable FAT32 volume.
	ErrFormat = errors.New("invalid boot sector")

	// ErrRange is a decoded cluster number or FAT entry offset outside its
	// sanity bound.
	ErrRange = errors.New("value out of range")

	// ErrCorruptChain is a FAT chain or directory that cannot terminate,
	// e.g. a cluster loop or a directory without an end marker.
	ErrCorruptChain = errors.New("corrupt cluster chain")
)
