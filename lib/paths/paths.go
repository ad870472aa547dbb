// Package paths centralizes the on-disk layout under the data directory.
//
//	<dataDir>/
//	  images/            source images (input root)
//	  processed/         derived artifacts (output root)
//	  .cache/digests/    digest cache (badger)
package paths

import "path/filepath"

// Paths resolves well-known locations under a data directory.
type Paths struct {
	dataDir string
}

// New creates a Paths rooted at dataDir.
func New(dataDir string) *Paths {
	return &Paths{dataDir: dataDir}
}

// DataDir returns the root data directory.
func (p *Paths) DataDir() string {
	return p.dataDir
}

// ImagesDir returns the input root holding source images.
func (p *Paths) ImagesDir() string {
	return filepath.Join(p.dataDir, "images")
}

// ProcessedDir returns the output root holding derived artifacts.
func (p *Paths) ProcessedDir() string {
	return filepath.Join(p.dataDir, "processed")
}

// DigestCacheDir returns the badger directory for cached digests.
func (p *Paths) DigestCacheDir() string {
	return filepath.Join(p.dataDir, ".cache", "digests")
}
