package digest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Key identifies a file version. A digest is only reused while the path,
// size and modification time all match.
type Key struct {
	Path    string
	Size    int64
	ModTime int64
}

// KeyFor builds the cache key for a stat'd file.
func KeyFor(path string, info os.FileInfo) Key {
	return Key{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime().UnixNano(),
	}
}

func (k Key) bytes() []byte {
	return []byte(fmt.Sprintf("digest/%d/%d/%s", k.Size, k.ModTime, k.Path))
}

// Cache stores computed digests keyed by file version.
type Cache interface {
	Get(key Key) (*Sums, bool)
	Put(key Key, sums *Sums) error
	Close() error
}

// BadgerCache is a Cache backed by an on-disk badger database.
type BadgerCache struct {
	db *badger.DB
}

// OpenBadgerCache opens (or creates) a badger database in dir.
func OpenBadgerCache(dir string) (*BadgerCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerCache{db: db}, nil
}

func (c *BadgerCache) Get(key Key) (*Sums, bool) {
	var sums Sums
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key.bytes())
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sums)
		})
	})
	if err != nil {
		return nil, false
	}
	return &sums, true
}

func (c *BadgerCache) Put(key Key, sums *Sums) error {
	data, err := json.Marshal(sums)
	if err != nil {
		return fmt.Errorf("marshal sums: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key.bytes(), data)
	})
}

// Close flushes and closes the database.
func (c *BadgerCache) Close() error {
	if c.db == nil || c.db.IsClosed() {
		return nil
	}
	return c.db.Close()
}
