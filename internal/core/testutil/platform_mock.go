package testutil

import (
	"io/fs"
	"os"
	"time"

	"github.com/AntonioJCosta/ign/internal/core/ports"
)

// MockPlatform is a mock implementation of ports.Platform.
// Env and Dirs back the default behaviour when the Func fields are unset.
type MockPlatform struct {
	Home    string
	HomeErr error
	Env     map[string]string
	Dirs    map[string]bool // path -> isDir; absent paths do not exist

	UserHomeDirFunc func() (string, error)
	LookupEnvFunc   func(key string) (string, bool)
	StatFunc        func(path string) (fs.FileInfo, error)
}

func (m *MockPlatform) UserHomeDir() (string, error) {
	if m.UserHomeDirFunc != nil {
		return m.UserHomeDirFunc()
	}
	return m.Home, m.HomeErr
}

func (m *MockPlatform) LookupEnv(key string) (string, bool) {
	if m.LookupEnvFunc != nil {
		return m.LookupEnvFunc(key)
	}
	v, ok := m.Env[key]
	return v, ok
}

func (m *MockPlatform) Stat(path string) (fs.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	isDir, ok := m.Dirs[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return fakeFileInfo{name: path, dir: isDir}, nil
}

var _ ports.Platform = (*MockPlatform)(nil)

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string { return f.name }
func (f fakeFileInfo) Size() int64  { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }
