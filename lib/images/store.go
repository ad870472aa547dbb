package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/nrednav/cuid2"
	"github.com/onkernel/diskprobe/lib/paths"
)

// Store owns the mapping from logical filenames to locations in the input
// (source images) and output (derived artifacts) roots. No other component
// builds image paths.
type Store struct {
	inputRoot  string
	outputRoot string
}

// NewStore creates a store over the images/ and processed/ roots of p.
func NewStore(p *paths.Paths) *Store {
	return &Store{
		inputRoot:  p.ImagesDir(),
		outputRoot: p.ProcessedDir(),
	}
}

// InputRoot returns the directory holding source images.
func (s *Store) InputRoot() string {
	return s.inputRoot
}

// OutputRoot returns the directory holding derived artifacts.
func (s *Store) OutputRoot() string {
	return s.outputRoot
}

// EnsureRoots creates both roots if missing. Safe to call repeatedly.
func (s *Store) EnsureRoots() error {
	for _, dir := range []string{s.inputRoot, s.outputRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// ResolveInput resolves a logical filename to an existing file under the
// input root.
func (s *Store) ResolveInput(name string) (string, error) {
	if err := ValidateReference(name); err != nil {
		return "", err
	}

	path, err := joinUnder(s.inputRoot, name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	return path, nil
}

// ResolveOutput derives the artifact path for name by prefixing its base
// name with label, under the output root. The target need not exist.
func (s *Store) ResolveOutput(name, label string) (string, error) {
	if err := ValidateReference(name); err != nil {
		return "", err
	}
	if strings.ContainsAny(label, `/\`) || label == ".." {
		return "", fmt.Errorf("%w: label %q", ErrInvalidReference, label)
	}

	dir, base := filepath.Split(filepath.Clean(name))
	return joinUnder(s.outputRoot, filepath.Join(dir, label+base))
}

// Stats counts direct entries (files and directories) in each root.
func (s *Store) Stats() (*StoreStats, error) {
	images, err := countEntries(s.inputRoot)
	if err != nil {
		return nil, err
	}
	processed, err := countEntries(s.outputRoot)
	if err != nil {
		return nil, err
	}
	return &StoreStats{Images: images, Processed: processed}, nil
}

// WriteArtifact produces outPath atomically. fn receives a temporary path
// next to outPath and must fully write the artifact there; on success the
// temporary file is renamed over outPath, on failure it is removed. An
// existing artifact at outPath is replaced.
func (s *Store) WriteArtifact(ctx context.Context, outPath string, fn func(ctx context.Context, tmpPath string) error) error {
	rel, err := filepath.Rel(s.outputRoot, outPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s is outside the output root", ErrInvalidReference, outPath)
	}

	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outPath), cuid2.Generate()))
	if err := fn(ctx, tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}

// ValidateReference rejects names that are empty, absolute, or contain a
// parent-directory segment. It never touches the filesystem.
func ValidateReference(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty filename", ErrInvalidReference)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidReference, name)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidReference, name)
	}
	for _, seg := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return fmt.Errorf("%w: %q escapes the store", ErrInvalidReference, name)
		}
	}
	if filepath.Clean(name) == "." {
		return fmt.Errorf("%w: %q names the root", ErrInvalidReference, name)
	}
	return nil
}

// joinUnder resolves name beneath root, following symlinks without
// letting them leave root.
func joinUnder(root, name string) (string, error) {
	path, err := securejoin.SecureJoin(root, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidReference, name, err)
	}
	if path == filepath.Clean(root) {
		return "", fmt.Errorf("%w: %q names the root", ErrInvalidReference, name)
	}
	return path, nil
}

func countEntries(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read %s: %w", dir, err)
	}
	return len(entries), nil
}
