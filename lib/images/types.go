package images

import (
	"path/filepath"
	"strings"
)

// ImageType is the disk image format tag derived from a filename.
type ImageType string

const (
	TypeRaw     ImageType = "raw"
	TypeISO9660 ImageType = "iso9660"
	TypeVMDK    ImageType = "vmdk"
	TypeVDI     ImageType = "vdi"
	TypeQCOW2   ImageType = "qcow2"
	TypeUnknown ImageType = "unknown"
)

// AllTypes lists every ImageType, unknown included.
var AllTypes = []ImageType{TypeRaw, TypeISO9660, TypeVMDK, TypeVDI, TypeQCOW2, TypeUnknown}

var extensionTypes = map[string]ImageType{
	".img":   TypeRaw,
	".iso":   TypeISO9660,
	".vmdk":  TypeVMDK,
	".vdi":   TypeVDI,
	".qcow2": TypeQCOW2,
}

// Classify maps a logical filename to its image type by extension.
// Matching is case-insensitive and never fails. A base name whose only dot
// is the leading one, such as ".img", has no extension.
func Classify(name string) ImageType {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		return TypeUnknown
	}
	if t, ok := extensionTypes[strings.ToLower(ext)]; ok {
		return t
	}
	return TypeUnknown
}

// ImageMetadata is a point-in-time description of a stored image.
type ImageMetadata struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	SizeMB   float64   `json:"size_mb"`
	Created  float64   `json:"created"`
	Modified float64   `json:"modified"`
	SHA256   string    `json:"sha256"`
	BLAKE3   string    `json:"blake3"`
	Type     ImageType `json:"type"`
}

// StoreStats counts direct entries in each storage root.
type StoreStats struct {
	Images    int `json:"images"`
	Processed int `json:"processed"`
}
