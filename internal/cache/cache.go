package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Cache memoizes perft leaf-node counts keyed by a position's Zobrist hash
// and the remaining search depth — the only two quantities a perft subtree
// count depends on, since the core rules carry no repetition or move-history
// state (see the Non-goals on threefold repetition and the fifty-move rule).
type Cache struct {
	db *badger.DB
}

// Open opens, creating if necessary, a BadgerDB-backed cache at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func perftKey(hash uint64, depth int) []byte {
	key := make([]byte, 9)
	binary.BigEndian.PutUint64(key[:8], hash)
	key[8] = byte(depth)
	return key
}

// Get returns the memoized leaf-node count for (hash, depth), or (0, false)
// if no entry exists.
func (c *Cache) Get(hash uint64, depth int) (int64, bool) {
	var nodes int64
	found := false

	_ = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(hash, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return nil
			}
			nodes = int64(binary.BigEndian.Uint64(val))
			found = true
			return nil
		})
	})

	return nodes, found
}

// Put memoizes the leaf-node count for (hash, depth).
func (c *Cache) Put(hash uint64, depth int, nodes int64) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(nodes))

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(hash, depth), val)
	})
}
