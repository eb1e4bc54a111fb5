package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

const dataDirMode = 0o755

// collection owns the in-memory records of one kind and the file they are
// flushed to. Callers only ever receive copies of the records.
type collection[T domain.Record[T], S any] struct {
	path   string
	key    string
	encode func(T) S
	decode func(S) T

	mu      sync.RWMutex
	records []T
}

func openCollection[T domain.Record[T], S any](path, key string, encode func(T) S, decode func(S) T) (*collection[T, S], error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s path: %w", key, err)
	}

	c := &collection[T, S]{
		path:   filepath.Clean(absPath),
		key:    key,
		encode: encode,
		decode: decode,
	}
	if err := c.load(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *collection[T, S]) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s file: %w", c.key, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("decode %s file: %w", c.key, err)
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(standardized, &document); err != nil {
		return fmt.Errorf("decode %s file: %w", c.key, err)
	}

	raw, ok := document[c.key]
	if !ok {
		return fmt.Errorf("decode %s file: missing %q array", c.key, c.key)
	}

	var entries []S
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("decode %s file: %w", c.key, err)
	}

	records := make([]T, 0, len(entries))
	for _, entry := range entries {
		records = append(records, c.decode(entry))
	}
	c.records = records

	return nil
}

func (c *collection[T, S]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]T, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record.WithID(record.RecordID()))
	}

	return records
}

func (c *collection[T, S]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := domain.FindByID(id, c.records)
	if !ok {
		return record, false
	}

	return record.WithID(record.RecordID()), true
}

// create assigns the next sequential identifier, appends the record and
// rewrites the whole file. The append is discarded when the write fails.
func (c *collection[T, S]) create(record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := record.WithID(domain.NextID(len(c.records)))

	next := make([]T, len(c.records), len(c.records)+1)
	copy(next, c.records)
	next = append(next, stored)

	if err := c.write(next); err != nil {
		var zero T
		return zero, err
	}
	c.records = next

	return stored.WithID(stored.RecordID()), nil
}

func (c *collection[T, S]) write(records []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), dataDirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", c.key, err)
	}

	entries := make([]S, 0, len(records))
	for _, record := range records {
		entries = append(entries, c.encode(record))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]S{c.key: entries}); err != nil {
		return fmt.Errorf("encode %s file: %w", c.key, err)
	}

	if err := atomic.WriteFile(c.path, &buf); err != nil {
		return fmt.Errorf("replace %s file: %w", c.key, err)
	}

	return nil
}
