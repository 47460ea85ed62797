package fatstat

import (
	"encoding/binary"
	"fmt"

	"github.com/aligator/gofat/checkpoint"
)

// eocThreshold separates chain continuations from end-of-chain markers:
// everything above it ends the chain. Note that this treats the reserved
// bad-cluster marker 0x0FFFFFF7 as a continuation; the cycle guard in Chain
// catches the loops this can produce on corrupted images.
const eocThreshold fatEntry = 0x0FFFFFF8

// fatEntry is one raw 32-bit little-endian entry of the file allocation
// table. The value is kept unmasked.
type fatEntry uint32

// Value returns the entry as a plain cluster number.
func (e fatEntry) Value() uint32 {
	return uint32(e)
}

// IsFree reports whether the entry marks an unallocated cluster.
func (e fatEntry) IsFree() bool {
	return e == 0
}

// IsEOC reports whether the entry is an end-of-chain marker.
func (e fatEntry) IsEOC() bool {
	return e > eocThreshold
}

// Table is FAT copy 0, loaded once and read-only thereafter. Only copy 0 is
// ever consulted.
type Table struct {
	geo  Geometry
	data []byte
}

// LoadTable reads FAT copy 0 from the volume.
func LoadTable(v *Volume, geo Geometry) (*Table, error) {
	offset := int64(geo.FAT0SectorStart) * int64(geo.BytesPerSector)
	length := int64(geo.SectorsPerFAT) * int64(geo.BytesPerSector)

	data, err := v.ReadAt(offset, length)
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrIO)
	}

	return &Table{geo: geo, data: data}, nil
}

// entryAt returns the raw FAT entry of the given cluster. The caller must
// have bounds-checked the cluster already.
func (t *Table) entryAt(cluster uint32) fatEntry {
	offset := int64(cluster) * 4
	return fatEntry(binary.LittleEndian.Uint32(t.data[offset : offset+4]))
}

// checkEntryOffset validates that the entry byte offset of cluster lies
// inside the loaded table. The bound is the byte offset against the table
// size, not the cluster number against the cluster count.
func (t *Table) checkEntryOffset(cluster uint32) error {
	if offset := int64(cluster)*4 + 4; offset <= 0 || offset >= int64(len(t.data)) {
		return checkpoint.Wrap(
			fmt.Errorf("FAT entry offset %d of cluster %d exceeds table size %d", offset, cluster, len(t.data)),
			ErrRange)
	}
	return nil
}

// Chain resolves the cluster chain starting at cluster into the ordered list
// of sector numbers composing its content. A free head entry resolves to an
// empty chain. The chain is followed iteratively, never recursively, so long
// chains cannot grow the stack; revisiting a cluster fails with
// ErrCorruptChain instead of looping forever.
func (t *Table) Chain(cluster uint32) ([]int64, error) {
	if err := t.checkEntryOffset(cluster); err != nil {
		return nil, err
	}

	entry := t.entryAt(cluster)
	if entry.IsFree() {
		return nil, nil
	}

	sectors := t.appendClusterSectors(nil, cluster)
	visited := map[uint32]bool{cluster: true}

	for !entry.IsEOC() {
		next := entry.Value()
		if visited[next] {
			return nil, checkpoint.Wrap(
				fmt.Errorf("cluster %d appears twice in the chain of cluster %d", next, cluster),
				ErrCorruptChain)
		}
		visited[next] = true

		if err := t.checkEntryOffset(next); err != nil {
			return nil, err
		}

		sectors = t.appendClusterSectors(sectors, next)
		entry = t.entryAt(next)
	}

	return sectors, nil
}

func (t *Table) appendClusterSectors(sectors []int64, cluster uint32) []int64 {
	for sector := t.geo.SectorOf(cluster); sector <= t.geo.LastSectorOf(cluster); sector++ {
		sectors = append(sectors, sector)
	}
	return sectors
}
