package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shiroemons/go-sramr/internal/sramr/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ReadDir はディレクトリを読み込みます（名前順）
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry
	}
	return result, nil
}

func (fs *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

func (fs *OSFileSystem) Executable() (string, error) {
	return os.Executable()
}

// SaveFileFinder はセーブファイルの検索を行います
type SaveFileFinder struct {
	fs interfaces.FileSystem
}

// NewSaveFileFinder は新しいSaveFileFinderを作成します
func NewSaveFileFinder(fs interfaces.FileSystem) *SaveFileFinder {
	return &SaveFileFinder{fs: fs}
}

// Find はカレントディレクトリ、次に実行ファイルと同じディレクトリから
// .srm / .srm.zst ファイルを検索します。見つからない場合は空文字列を返します。
func (f *SaveFileFinder) Find() (string, error) {
	currentDir, err := f.fs.Getwd()
	if err != nil {
		return "", err
	}

	saves, err := f.findInDir(currentDir)
	if err != nil {
		return "", err
	}

	// カレントディレクトリで見つかった場合は他のディレクトリは検索しない
	if len(saves) == 0 {
		execPath, err := f.fs.Executable()
		if err != nil {
			return "", err
		}
		execDir := filepath.Dir(execPath)
		if execDir == currentDir {
			return "", nil
		}
		if saves, err = f.findInDir(execDir); err != nil {
			return "", err
		}
	}

	switch len(saves) {
	case 0:
		return "", nil
	case 1:
		return saves[0], nil
	}
	return "", multipleFilesError(saves)
}

// findInDir は指定されたディレクトリ内のセーブファイルを検索します
func (f *SaveFileFinder) findInDir(dir string) ([]string, error) {
	files, err := f.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var saves []string
	for _, file := range files {
		if file.IsDir() || !SaveFilePattern.MatchString(file.Name()) {
			continue
		}
		saves = append(saves, filepath.Join(dir, file.Name()))
	}
	slices.Sort(saves)
	return saves, nil
}

func multipleFilesError(saves []string) error {
	names := make([]string, len(saves))
	for i, path := range saves {
		names[i] = filepath.Base(path)
	}
	return fmt.Errorf("%w: %s", ErrMultipleSaveFiles, strings.Join(names, ", "))
}
