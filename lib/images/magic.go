package images

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// signature is a byte pattern expected at a fixed offset.
type signature struct {
	offset int64
	magic  []byte
}

// headerSignatures lists accepted signatures per type; any one matching is
// enough. Raw and unknown images have no signature.
var headerSignatures = map[ImageType][]signature{
	TypeQCOW2: {
		{offset: 0, magic: []byte{'Q', 'F', 'I', 0xfb}},
	},
	TypeVMDK: {
		{offset: 0, magic: []byte("KDMV")},                  // hosted sparse extent
		{offset: 0, magic: []byte("COWD")},                  // ESX sparse extent
		{offset: 0, magic: []byte("# Disk DescriptorFile")}, // text descriptor
	},
	TypeVDI: {
		{offset: 0x40, magic: []byte{0x7f, 0x10, 0xda, 0xbe}},
	},
	TypeISO9660: {
		{offset: 0x8001, magic: []byte("CD001")},
	},
}

// HeaderCheck is the outcome of a structural header check.
type HeaderCheck struct {
	Valid  bool
	Reason string
}

// CheckHeader verifies that r starts with the on-disk signature of t.
func CheckHeader(r io.ReaderAt, t ImageType) (*HeaderCheck, error) {
	sigs, ok := headerSignatures[t]
	if !ok {
		return &HeaderCheck{Valid: true}, nil
	}

	tooSmall := true
	for _, sig := range sigs {
		buf := make([]byte, len(sig.magic))
		n, err := r.ReadAt(buf, sig.offset)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header at %#x: %w", sig.offset, err)
		}
		if n < len(buf) {
			continue
		}
		tooSmall = false
		if bytes.Equal(buf, sig.magic) {
			return &HeaderCheck{Valid: true}, nil
		}
	}

	if tooSmall {
		return &HeaderCheck{Reason: fmt.Sprintf("file too small for %s header", t)}, nil
	}
	return &HeaderCheck{Reason: fmt.Sprintf("%s signature not found", t)}, nil
}
