package testutil

import (
	"io/fs"

	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// FaultyFS wraps an FS and injects errors for specific paths
type FaultyFS struct {
	types.FS
	ReadErrors  map[string]error
	WriteErrors map[string]error
	StatErrors  map[string]error
}

// NewFaultyFS wraps base with empty fault tables
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:          base,
		ReadErrors:  map[string]error{},
		WriteErrors: map[string]error{},
		StatErrors:  map[string]error{},
	}
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErrors[name]; ok {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.ReadErrors[name]; ok {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.WriteErrors[name]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

// MockFS is a testify mock of types.FS for asserting exact I/O
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	args := m.Called(name)
	entries, _ := args.Get(0).([]fs.DirEntry)
	return entries, args.Error(1)
}
