// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrInvalidSave はセーブデータが無効な場合のエラー
	ErrInvalidSave = errors.New("無効なセーブデータです")

	// ErrNoSaveFound はセーブデータが見つからない場合のエラー
	ErrNoSaveFound = errors.New("セーブデータが見つかりません。ファイルを引数で指定してください")

	// ErrParseFailure は解析に失敗した場合のエラー
	ErrParseFailure = errors.New("データの解析に失敗しました")
)

// SaveError はセーブデータ関連のエラー
type SaveError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *SaveError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *SaveError) Unwrap() error {
	return e.Err
}

// NewSaveError は新しいSaveErrorを作成します
func NewSaveError(op, path string, err error) *SaveError {
	return &SaveError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
