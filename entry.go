package fatstat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/aligator/gofat/checkpoint"
)

const entrySize = 32

// deletedMarker replaces the first name byte of an entry when it is deleted.
const deletedMarker = 0xE5

// Directory entry attribute bits.
const (
	attrVolume    = 0x08
	attrDirectory = 0x10
	attrLongName  = 0x0F
)

// EntryType classifies a directory entry by its attribute byte.
type EntryType string

const (
	TypeVolume   EntryType = "vol"
	TypeLongName EntryType = "lfn"
	TypeDir      EntryType = "dir"
	TypeFile     EntryType = "other"
	TypeEmpty    EntryType = "empty"
)

// ClassifyEntryType maps the attribute byte at offset 11 of a directory
// entry to its type. TypeEmpty marks the end of a directory.
func ClassifyEntryType(attribute byte) EntryType {
	switch {
	case attribute == 0:
		return TypeEmpty
	case attribute&attrLongName == attrLongName:
		return TypeLongName
	case attribute&attrVolume == attrVolume:
		return TypeVolume
	case attribute&attrDirectory == attrDirectory:
		return TypeDir
	default:
		return TypeFile
	}
}

// DecodeDisplayName decodes the name of one raw 32-byte directory entry.
// Long filename fragments carry UTF-16 code units in three regions of the
// entry, everything else carries a space-padded 8.3 name.
func DecodeDisplayName(raw []byte) string {
	if ClassifyEntryType(raw[11]) == TypeLongName {
		return decodeLongNameFragment(raw)
	}

	name := strings.TrimRight(string(raw[0:8]), " ")
	ext := strings.TrimRight(string(raw[8:11]), " ")

	if ext != "" {
		name += "."
	}

	return name + ext
}

func decodeLongNameFragment(raw []byte) string {
	var lfn LongFilenameEntry
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &lfn); err != nil {
		return ""
	}

	var units []uint16
	for _, region := range [][]uint16{lfn.First[:], lfn.Second[:], lfn.Third[:]} {
		for _, unit := range region {
			// 0x0000 terminates the name, 0xFFFF pads the rest.
			if unit == 0x0000 || unit == 0xFFFF {
				return string(utf16.Decode(units))
			}
			units = append(units, unit)
		}
	}

	return string(utf16.Decode(units))
}

// DirEntry is one decoded directory entry, annotated by the walk with its
// position in the tree. Entries are appended to the result list and never
// mutated afterwards; all cluster numbers are held by value.
//
// Content is the preview of the first bytes of a file's data. Slack is the
// data past the declared filesize within the allocated clusters; it is nil
// (absent) when the content cluster was unallocated, because unverified
// storage has no reliable end of file.
type DirEntry struct {
	Parent         string     `json:"parent"`
	DirCluster     uint32     `json:"dir_cluster"`
	EntryNum       int        `json:"entry_num"`
	DirSectors     []int64    `json:"dir_sectors"`
	Type           EntryType  `json:"entry_type"`
	Name           string     `json:"name"`
	Deleted        bool       `json:"deleted"`
	ContentCluster *uint32    `json:"content_cluster,omitempty"`
	Filesize       *uint32    `json:"filesize,omitempty"`
	ContentSectors []int64    `json:"content_sectors,omitempty"`
	Content        []byte     `json:"content,omitempty"`
	Slack          []byte     `json:"slack,omitempty"`
	Modified       *time.Time `json:"modified,omitempty"`
}

// decodeDirEntry decodes one raw 32-byte record. The second return value is
// false iff the record carries the terminator tag, which ends the enclosing
// directory scan no matter what the remaining bytes contain.
//
// Content cluster numbers are sanity checked against the volume's cluster
// count; a violation is an ErrRange which aborts the whole enumeration.
func decodeDirEntry(raw []byte, geo Geometry) (DirEntry, bool, error) {
	var hdr EntryHeader
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &hdr); err != nil {
		return DirEntry{}, false, checkpoint.Wrap(err, ErrFormat)
	}

	entryType := ClassifyEntryType(hdr.Attribute)
	if entryType == TypeEmpty {
		return DirEntry{}, false, nil
	}

	entry := DirEntry{
		Type:    entryType,
		Name:    DecodeDisplayName(raw),
		Deleted: hdr.Name[0] == deletedMarker,
	}

	if entryType != TypeDir && entryType != TypeFile {
		return entry, true, nil
	}

	cluster := uint32(hdr.FirstClusterHI)<<16 | uint32(hdr.FirstClusterLO)
	if cluster > geo.MaxCluster() {
		return DirEntry{}, false, checkpoint.Wrap(
			fmt.Errorf("content cluster %d of entry %q exceeds cluster count %d", cluster, entry.Name, geo.MaxCluster()),
			ErrRange)
	}
	entry.ContentCluster = &cluster

	if modified := ParseTimestamp(hdr.WriteDate, hdr.WriteTime); !modified.IsZero() {
		entry.Modified = &modified
	}

	if entryType == TypeFile && cluster != 0 {
		size := hdr.FileSize
		entry.Filesize = &size
	}

	return entry, true, nil
}
