package fatstat

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/aligator/gofat/checkpoint"
)

// bootSectorSize is the amount of bytes needed to decode the BPB. Almost all
// FAT32 volumes use a sector size of 512 anyway.
const bootSectorSize = 512

// Geometry holds the volume-wide layout parameters decoded from the boot
// sector. All derived fields are computed once during parsing; a Geometry is
// immutable for the lifetime of its session.
type Geometry struct {
	BytesPerSector      uint32 `json:"bytes_per_sector"`
	SectorsPerCluster   uint32 `json:"sectors_per_cluster"`
	ReservedSectors     uint32 `json:"reserved_sectors"`
	NumberOfFATs        uint32 `json:"number_of_fats"`
	TotalSectors        uint32 `json:"total_sectors"`
	SectorsPerFAT       uint32 `json:"sectors_per_fat"`
	RootDirFirstCluster uint32 `json:"root_dir_first_cluster"`

	BytesPerCluster uint32 `json:"bytes_per_cluster"`
	FAT0SectorStart uint32 `json:"fat0_sector_start"`
	FAT0SectorEnd   uint32 `json:"fat0_sector_end"`
	DataStart       uint32 `json:"data_start"`
	DataEnd         uint32 `json:"data_end"`
}

// ParseBootSector decodes the boot sector of the volume into a Geometry.
// A volume too small for a boot sector or with degenerate values is rejected
// with ErrFormat. There is nothing to retry, the error is fatal.
func ParseBootSector(v *Volume) (Geometry, error) {
	raw, err := v.ReadAt(0, bootSectorSize)
	if err != nil {
		return Geometry{}, checkpoint.Wrap(err, ErrFormat)
	}

	var bpb BPB
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &bpb); err != nil {
		return Geometry{}, checkpoint.Wrap(err, ErrFormat)
	}

	var fat32 FAT32SpecificData
	if err := binary.Read(bytes.NewReader(bpb.FATSpecificData[:]), binary.LittleEndian, &fat32); err != nil {
		return Geometry{}, checkpoint.Wrap(err, ErrFormat)
	}

	geo := Geometry{
		BytesPerSector:      uint32(bpb.BytesPerSector),
		SectorsPerCluster:   uint32(bpb.SectorsPerCluster),
		ReservedSectors:     uint32(bpb.ReservedSectorCount),
		NumberOfFATs:        uint32(bpb.NumFATs),
		TotalSectors:        bpb.TotalSectors32,
		SectorsPerFAT:       fat32.FATSize,
		RootDirFirstCluster: fat32.RootCluster,
	}

	for _, check := range []struct {
		name  string
		value uint32
	}{
		{"bytes_per_sector", geo.BytesPerSector},
		{"sectors_per_cluster", geo.SectorsPerCluster},
		{"number_of_fats", geo.NumberOfFATs},
		{"total_sectors", geo.TotalSectors},
		{"sectors_per_fat", geo.SectorsPerFAT},
	} {
		if check.value == 0 {
			return Geometry{}, checkpoint.Wrap(fmt.Errorf("%v is zero", check.name), ErrFormat)
		}
	}

	geo.BytesPerCluster = geo.BytesPerSector * geo.SectorsPerCluster
	geo.FAT0SectorStart = geo.ReservedSectors
	geo.FAT0SectorEnd = geo.FAT0SectorStart + geo.SectorsPerFAT - 1
	geo.DataStart = geo.ReservedSectors + geo.SectorsPerFAT*geo.NumberOfFATs
	geo.DataEnd = geo.TotalSectors - 1

	return geo, nil
}

// SectorOf returns the first sector of the given cluster. Cluster numbers
// below 2 map in front of the data region, so the arithmetic is signed.
func (g Geometry) SectorOf(cluster uint32) int64 {
	return (int64(cluster)-2)*int64(g.SectorsPerCluster) + int64(g.DataStart)
}

// LastSectorOf returns the last sector of the given cluster.
func (g Geometry) LastSectorOf(cluster uint32) int64 {
	return g.SectorOf(cluster) + int64(g.SectorsPerCluster) - 1
}

// MaxCluster is the highest cluster number the volume can contain.
func (g Geometry) MaxCluster() uint32 {
	return g.TotalSectors / g.SectorsPerCluster
}
