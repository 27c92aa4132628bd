package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

// MemoryStorage keeps files in process memory. Intended for tests and local development.
type MemoryStorage struct {
	files map[string]memoryFile
	mu    sync.RWMutex
}

type memoryFile struct {
	info FileInfo
	data []byte
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{files: make(map[string]memoryFile)}
}

func (m *MemoryStorage) Put(_ context.Context, f content.File, opts ...Option) (*FileInfo, error) {
	o := buildPutOptions(ACLPrivate, opts...)
	info, err := prepare(f, o)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[info.Key] = memoryFile{info: *info, data: bytes.Clone(f.Data)}

	return info, nil
}

func (m *MemoryStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[key]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[key]; !ok {
		return ErrNotFound
	}
	delete(m.files, key)
	return nil
}

// URL returns a "memory://" URL for a stored key.
func (m *MemoryStorage) URL(_ context.Context, key string, _ ...URLOption) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.files[key]; !ok {
		return "", ErrNotFound
	}
	return "memory://" + key, nil
}

// Stat returns metadata of a stored file.
func (m *MemoryStorage) Stat(key string) (FileInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[key]
	return f.info, ok
}

var _ Storage = (*MemoryStorage)(nil)
