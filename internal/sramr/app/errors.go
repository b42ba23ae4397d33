package app

import "errors"

var (
	// ErrRender は出力の生成に失敗した場合のエラー
	ErrRender = errors.New("出力の生成に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")

	// ErrWriteOutput は標準出力への書き込みに失敗した場合のエラー
	ErrWriteOutput = errors.New("出力の書き込みに失敗しました")
)
