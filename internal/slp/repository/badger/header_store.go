// Package badger keeps the chain of indexed block headers on local disk.
// The block ingester compares it against the node to detect reorgs.
package badger

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/slp-indexer/internal/slp/model"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no header matches the lookup.
var ErrNotFound = errors.New("header not found")

var (
	headerPrefix = []byte("hdr/")
	heightPrefix = []byte("hgt/")
	tipKey       = []byte("tip")
)

type HeaderStore struct {
	db *badger.DB
	// mu serializes writers that read the tip before moving it.
	mu sync.Mutex
}

type loggerWrapper struct {
	*zap.SugaredLogger
}

func (l loggerWrapper) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}

// NewHeaderStore opens the store at path. An empty path keeps it in memory.
func NewHeaderStore(path string, logger *zap.Logger) (*HeaderStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(loggerWrapper{logger.Named("badger").Sugar()}).
		WithLoggingLevel(badger.WARNING)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("header store at %s is locked by another process: %w", path, err)
		}
		return nil, fmt.Errorf("open header store at %s: %w", path, err)
	}
	return &HeaderStore{db: db}, nil
}

// Put records header and moves the tip when header is at or above it.
func (s *HeaderStore) Put(_ context.Context, header model.BlockHeader) error {
	raw, err := encodeHeader(header)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(headerKey(header.Hash), raw); err != nil {
			return err
		}
		if err := txn.Set(heightKey(header.Height), []byte(header.Hash)); err != nil {
			return err
		}

		tip, err := tipIn(txn)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if tip == nil || header.Height >= tip.Height {
			return txn.Set(tipKey, []byte(header.Hash))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put header %s: %w", header.Hash, err)
	}
	return nil
}

// Get returns the header stored under hash.
func (s *HeaderStore) Get(_ context.Context, hash string) (*model.BlockHeader, error) {
	var header *model.BlockHeader
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		header, err = headerIn(txn, hash)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get header %s: %w", hash, err)
	}
	return header, nil
}

// ByHeight returns the header indexed at height on the stored chain.
func (s *HeaderStore) ByHeight(_ context.Context, height uint64) (*model.BlockHeader, error) {
	var header *model.BlockHeader
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(heightKey(height))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		hash, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		header, err = headerIn(txn, string(hash))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get header at height %d: %w", height, err)
	}
	return header, nil
}

// Tip returns the highest recorded header, or ErrNotFound on an empty store.
func (s *HeaderStore) Tip(_ context.Context) (*model.BlockHeader, error) {
	var header *model.BlockHeader
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		header, err = tipIn(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get tip: %w", err)
	}
	return header, nil
}

// Delete forgets the header under hash. When it was the tip, the tip moves to
// its parent if that is known.
func (s *HeaderStore) Delete(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		header, err := headerIn(txn, hash)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := txn.Delete(headerKey(hash)); err != nil {
			return err
		}

		item, err := txn.Get(heightKey(header.Height))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			indexed, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if string(indexed) == hash {
				if err := txn.Delete(heightKey(header.Height)); err != nil {
					return err
				}
			}
		}

		tip, err := txn.Get(tipKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		tipHash, err := tip.ValueCopy(nil)
		if err != nil {
			return err
		}
		if string(tipHash) != hash {
			return nil
		}
		if _, err := headerIn(txn, header.PrevHash); err == nil {
			return txn.Set(tipKey, []byte(header.PrevHash))
		}
		return txn.Delete(tipKey)
	})
	if err != nil {
		return fmt.Errorf("delete header %s: %w", hash, err)
	}
	return nil
}

// Close closes the database.
func (s *HeaderStore) Close() error {
	return s.db.Close()
}

func tipIn(txn *badger.Txn) (*model.BlockHeader, error) {
	item, err := txn.Get(tipKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	hash, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	return headerIn(txn, string(hash))
}

func headerIn(txn *badger.Txn, hash string) (*model.BlockHeader, error) {
	item, err := txn.Get(headerKey(hash))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var header model.BlockHeader
	if err := item.Value(func(val []byte) error {
		return gob.NewDecoder(bytes.NewReader(val)).Decode(&header)
	}); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	return &header, nil
}

func encodeHeader(header model.BlockHeader) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(header); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	return buf.Bytes(), nil
}

func headerKey(hash string) []byte {
	return append(append([]byte{}, headerPrefix...), hash...)
}

// heightKey is big-endian so keys sort by height.
func heightKey(height uint64) []byte {
	key := make([]byte, len(heightPrefix)+8)
	copy(key, heightPrefix)
	binary.BigEndian.PutUint64(key[len(heightPrefix):], height)
	return key
}
