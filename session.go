package fatstat

import (
	"github.com/spf13/afero"
)

// Session is one parse of a FAT32 image. It exclusively owns the volume
// handle; geometry and FAT are loaded once during Open and shared read-only
// by everything else, so a Session needs no locking but must not be used
// concurrently with Close.
type Session struct {
	vol *Volume
	geo Geometry
	fat *Table
}

// Open parses the image at path on the OS filesystem.
func Open(path string) (*Session, error) {
	return OpenFs(afero.NewOsFs(), path)
}

// OpenFs parses the image at path on the given filesystem. The volume handle
// is released again on every failure path.
func OpenFs(fs afero.Fs, path string) (*Session, error) {
	vol, err := OpenVolume(fs, path)
	if err != nil {
		return nil, err
	}

	geo, err := ParseBootSector(vol)
	if err != nil {
		_ = vol.Close()
		return nil, err
	}

	fat, err := LoadTable(vol, geo)
	if err != nil {
		_ = vol.Close()
		return nil, err
	}

	return &Session{vol: vol, geo: geo, fat: fat}, nil
}

// Close releases the volume handle. Must be called exactly once.
func (s *Session) Close() error {
	return s.vol.Close()
}

// Geometry returns the decoded volume layout.
func (s *Session) Geometry() Geometry {
	return s.geo
}

// Chain resolves the cluster chain of cluster into its sector list.
func (s *Session) Chain(cluster uint32) ([]int64, error) {
	return s.fat.Chain(cluster)
}

// ReadChain concatenates the raw bytes of every sector of the chain starting
// at cluster, in chain order. This includes the slack space past any nominal
// file size, nothing is truncated here.
//
// An empty chain returns empty bytes, unless ignoreUnallocated is set: then
// exactly one cluster is read directly at the cluster's computed sector.
// That read is a best-effort forensic heuristic, the bytes may belong to an
// unrelated, previously deleted file.
func (s *Session) ReadChain(cluster uint32, ignoreUnallocated bool) ([]byte, error) {
	sectors, err := s.fat.Chain(cluster)
	if err != nil {
		return nil, err
	}

	if len(sectors) == 0 {
		if !ignoreUnallocated {
			return []byte{}, nil
		}
		first := s.geo.SectorOf(cluster)
		for sector := first; sector < first+int64(s.geo.SectorsPerCluster); sector++ {
			sectors = append(sectors, sector)
		}
	}

	// The chain may be non-contiguous, so the sectors are read one at a time.
	data := make([]byte, 0, int64(len(sectors))*int64(s.geo.BytesPerSector))
	for _, sector := range sectors {
		buf, err := s.vol.ReadAt(sector*int64(s.geo.BytesPerSector), int64(s.geo.BytesPerSector))
		if err != nil {
			return nil, err
		}
		data = append(data, buf...)
	}

	return data, nil
}

// Entries enumerates the complete directory tree starting at the root
// directory's first cluster. Either the whole tree is returned or an error,
// there are no partial results.
func (s *Session) Entries() ([]DirEntry, error) {
	return Walk(s, s.geo.RootDirFirstCluster, "")
}
