package fatstat

import (
	"encoding/binary"
	"testing"

	"github.com/spf13/afero"
)

// The test image is one small FAT32 volume built in memory:
// 64 sectors of 512 bytes, one sector per cluster, 32 reserved sectors,
// a single FAT of 8 sectors, data region starting at sector 40.
const (
	testBytesPerSector = 512
	testTotalSectors   = 64
	testFATOffset      = 32 * testBytesPerSector

	// 2021-07-05 12:30:10 as FAT write date/time stamps.
	testWriteDate = 41<<9 | 7<<5 | 5
	testWriteTime = 12<<11 | 30<<5 | 5
)

// testGeometry is what ParseBootSector must decode from buildTestImage.
var testGeometry = Geometry{
	BytesPerSector:      512,
	SectorsPerCluster:   1,
	ReservedSectors:     32,
	NumberOfFATs:        1,
	TotalSectors:        64,
	SectorsPerFAT:       8,
	RootDirFirstCluster: 2,
	BytesPerCluster:     512,
	FAT0SectorStart:     32,
	FAT0SectorEnd:       39,
	DataStart:           40,
	DataEnd:             63,
}

// buildTestImage lays out the volume used by most tests:
//
//	cluster 2 (sector 40): root directory: SUB, A.TXT, deleted \xE5EL.TXT
//	cluster 3 (sector 41): SUB directory: ".", ".."
//	cluster 4 (sector 42): content of A.TXT ("hello" + 32 bytes of slack 'A')
//	cluster 5 (sector 43): unallocated, holds leftover bytes "OLDDATA!"
//	cluster 6 (sector 44): unallocated, starts with 'Z'
//	clusters 7-9: an allocated three cluster chain
//	clusters 10-11: a chain loop
func buildTestImage() []byte {
	img := make([]byte, testTotalSectors*testBytesPerSector)

	binary.LittleEndian.PutUint16(img[11:], testBytesPerSector)
	img[13] = 1
	binary.LittleEndian.PutUint16(img[14:], 32)
	img[16] = 1
	binary.LittleEndian.PutUint32(img[32:], testTotalSectors)
	binary.LittleEndian.PutUint32(img[36:], 8)
	binary.LittleEndian.PutUint32(img[44:], 2)

	setFATEntry(img, 2, 0x0FFFFFFF)
	setFATEntry(img, 3, 0x0FFFFFFF)
	setFATEntry(img, 4, 0x0FFFFFFF)
	setFATEntry(img, 7, 8)
	setFATEntry(img, 8, 9)
	setFATEntry(img, 9, 0x0FFFFFFF)
	setFATEntry(img, 10, 11)
	setFATEntry(img, 11, 10)

	root := 40 * testBytesPerSector
	writeDirEntry(img, root, "SUB        ", attrDirectory, 3, 0, 0, 0)
	writeDirEntry(img, root+32, "A       TXT", 0x20, 4, 5, testWriteDate, testWriteTime)
	writeDirEntry(img, root+64, "\xE5EL     TXT", 0x20, 5, 8, 0, 0)

	sub := 41 * testBytesPerSector
	writeDirEntry(img, sub, ".          ", attrDirectory, 3, 0, 0, 0)
	writeDirEntry(img, sub+32, "..         ", attrDirectory, 0, 0, 0, 0)

	content := 42 * testBytesPerSector
	copy(img[content:], "hello")
	for i := 0; i < slackPreviewSize; i++ {
		img[content+5+i] = 'A'
	}

	copy(img[43*testBytesPerSector:], "OLDDATA!")
	img[44*testBytesPerSector] = 'Z'

	return img
}

func setFATEntry(img []byte, cluster, value uint32) {
	binary.LittleEndian.PutUint32(img[testFATOffset+int(cluster)*4:], value)
}

func writeDirEntry(img []byte, offset int, name string, attribute byte, cluster, size uint32, writeDate, writeTime uint16) {
	copy(img[offset:offset+11], name)
	img[offset+11] = attribute
	binary.LittleEndian.PutUint16(img[offset+20:], uint16(cluster>>16))
	binary.LittleEndian.PutUint16(img[offset+22:], writeTime)
	binary.LittleEndian.PutUint16(img[offset+24:], writeDate)
	binary.LittleEndian.PutUint16(img[offset+26:], uint16(cluster&0xFFFF))
	binary.LittleEndian.PutUint32(img[offset+28:], size)
}

// testingVolume wraps the image into an opened Volume.
func testingVolume(t *testing.T, img []byte) *Volume {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "test.img", img, 0644); err != nil {
		t.Fatal(err)
	}

	vol, err := OpenVolume(fs, "test.img")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = vol.Close() })

	return vol
}

// testingSession opens a full parse session on the image.
func testingSession(t *testing.T, img []byte) *Session {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "test.img", img, 0644); err != nil {
		t.Fatal(err)
	}

	session, err := OpenFs(fs, "test.img")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = session.Close() })

	return session
}
