// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/shiroemons/go-sramr/internal/sramr/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files      map[string][]byte
	Dirs       map[string]bool
	WorkingDir string
	ExecPath   string
	Error      error // すべての操作が返すエラー
	WriteError error // WriteFile と MkdirAll のみが返すエラー
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:      make(map[string][]byte),
		Dirs:       make(map[string]bool),
		WorkingDir: "/test/dir",
		ExecPath:   "/test/exec/program",
	}
}

func (m *MockFileSystem) FileExists(filename string) bool {
	_, exists := m.Files[filename]
	return exists
}

func (m *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	data, exists := m.Files[filename]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.Files[filename] = slices.Clone(data)
	return nil
}

func (m *MockFileSystem) MkdirAll(path string, perm uint32) error {
	if err := m.writeErr(); err != nil {
		return err
	}
	m.Dirs[path] = true
	return nil
}

// Stat はファイル情報を取得します
func (m *MockFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if _, exists := m.Files[name]; exists {
		return &MockFileInfo{name: filepath.Base(name)}, nil
	}
	if m.Dirs[name] {
		return &MockFileInfo{name: filepath.Base(name), isDir: true}, nil
	}
	return nil, fs.ErrNotExist
}

// ReadDir はディレクトリ直下のファイルとサブディレクトリを返します。
// Dirs に登録されていなくても、直下にファイルがあれば存在するものとして扱います。
func (m *MockFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	var entries []interfaces.DirEntry
	for path := range m.Files {
		if filepath.Dir(path) == dirname {
			entries = append(entries, &MockFileInfo{name: filepath.Base(path)})
		}
	}
	for path := range m.Dirs {
		if filepath.Dir(path) == dirname && path != dirname {
			entries = append(entries, &MockFileInfo{name: filepath.Base(path), isDir: true})
		}
	}

	if len(entries) == 0 && !m.Dirs[dirname] {
		return nil, errors.New("directory not found")
	}
	return entries, nil
}

func (m *MockFileSystem) Getwd() (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	return m.WorkingDir, nil
}

func (m *MockFileSystem) Executable() (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	return m.ExecPath, nil
}

func (m *MockFileSystem) writeErr() error {
	if m.Error != nil {
		return m.Error
	}
	return m.WriteError
}

// MockFileInfo はテスト用のFileInfo / DirEntry 実装
type MockFileInfo struct {
	name  string
	isDir bool
}

func (fi *MockFileInfo) Name() string { return fi.name }

func (fi *MockFileInfo) IsDir() bool { return fi.isDir }
