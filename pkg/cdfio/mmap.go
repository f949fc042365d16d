package cdfio

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/cdfkit/cdf-kit/pkg/cdferr"
)

// MmapFile memory-maps a CDF file on disk, the way saferwall-pe's
// pe.New mmaps a PE image before parsing its descriptor chain. CDF files
// range from a few hundred KB to many GB; mapping avoids copying the
// whole file through read(2) before the decoder ever touches it.
type MmapFile struct {
	f      *os.File
	data   mmap.MMap
	Cursor *Cursor
}

// OpenMmap opens path read-only and memory-maps it, returning a Cursor
// backed directly by the mapping.
func OpenMmap(path string) (*MmapFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cdferr.NewIO(err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, cdferr.NewIO(err)
	}

	return &MmapFile{
		f:      f,
		data:   data,
		Cursor: NewCursor(bytes.NewReader(data)),
	}, nil
}

// Bytes exposes the raw mapped contents, e.g. for a caller that wants to
// hand the whole-file-compression wrapper (CCR) bytes to an external
// decompressor.
func (m *MmapFile) Bytes() []byte {
	return m.data
}

// Close unmaps the file and releases the underlying file handle.
func (m *MmapFile) Close() error {
	unmapErr := m.data.Unmap()
	closeErr := m.f.Close()
	if unmapErr != nil {
		return cdferr.NewIO(unmapErr)
	}
	if closeErr != nil {
		return cdferr.NewIO(closeErr)
	}
	return nil
}
