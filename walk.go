package fatstat

import (
	"fmt"

	"github.com/aligator/gofat/checkpoint"
)

// fatVolume provides all methods the directory walk needs from a parse
// session. It mainly exists to be able to mock the session in tests.
// Generated mock using mockgen:
//  mockgen -source=walk.go -destination=walk_mock.go -package fatstat
type fatVolume interface {
	Geometry() Geometry
	Chain(cluster uint32) ([]int64, error)
	ReadChain(cluster uint32, ignoreUnallocated bool) ([]byte, error)
}

// walkFrame is one directory being scanned.
type walkFrame struct {
	cluster  uint32
	parent   string
	entryNum int
}

// Walk enumerates the directory tree starting at cluster and returns one
// DirEntry per discovered record, in scan order. Subdirectories are entered
// immediately when their entry is found, so a subtree directly follows its
// directory's own entry; "." and ".." entries are recorded but never
// entered. Deleted entries are enumerated like live ones, including deleted
// directories, as long as the directory bytes are still readable.
//
// The recursion is an explicit frame stack, so nesting depth is not bounded
// by the goroutine stack. A directory cluster that was already walked is
// not entered again, which keeps an entry pointing at an ancestor cluster
// from looping the walk.
//
// A directory scan ends only at an entry with the terminator tag. If a
// directory runs past the physical end of its cluster chain without one,
// the walk fails with ErrCorruptChain.
func Walk(vol fatVolume, cluster uint32, parent string) ([]DirEntry, error) {
	geo := vol.Geometry()
	entries := []DirEntry{}
	visited := map[uint32]bool{cluster: true}
	stack := []walkFrame{{cluster: cluster, parent: parent}}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]

		// The directory bytes are re-read for every record: unallocated
		// directory clusters are still scanned via the recovery read.
		data, err := vol.ReadChain(frame.cluster, true)
		if err != nil {
			return nil, err
		}

		offset := entrySize * frame.entryNum
		if offset+entrySize > len(data) {
			return nil, checkpoint.Wrap(
				fmt.Errorf("no terminator within the %d bytes of directory cluster %d", len(data), frame.cluster),
				ErrCorruptChain)
		}

		entry, ok, err := decodeDirEntry(data[offset:offset+entrySize], geo)
		if err != nil {
			return nil, err
		}
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		dirSectors, err := vol.Chain(frame.cluster)
		if err != nil {
			return nil, err
		}

		entry.Parent = frame.parent
		entry.DirCluster = frame.cluster
		entry.EntryNum = frame.entryNum
		entry.DirSectors = dirSectors
		frame.entryNum++

		if entry.Type == TypeFile && entry.ContentCluster != nil && *entry.ContentCluster != 0 {
			entry.ContentSectors, err = vol.Chain(*entry.ContentCluster)
			if err != nil {
				return nil, err
			}
			entry.Content, entry.Slack, err = extractContent(vol, *entry.ContentCluster, *entry.Filesize)
			if err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)

		if entry.Type == TypeDir && entry.Name != "." && entry.Name != ".." &&
			entry.ContentCluster != nil && !visited[*entry.ContentCluster] {
			visited[*entry.ContentCluster] = true
			stack = append(stack, walkFrame{
				cluster: *entry.ContentCluster,
				parent:  frame.parent + "/" + entry.Name,
			})
		}
	}

	return entries, nil
}
