package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("出力先ディレクトリの作成に失敗しました")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("内容の書き込みに失敗しました")

	// ErrEncodeShiftJIS はShift_JISへの変換に失敗した場合のエラー
	ErrEncodeShiftJIS = errors.New("Shift_JISへの変換に失敗しました")

	// ErrDecompress はzstdの展開に失敗した場合のエラー
	ErrDecompress = errors.New("zstdの展開に失敗しました")

	// ErrReadSave はセーブファイルの読み込みに失敗した場合のエラー
	ErrReadSave = errors.New("セーブファイルの読み込みに失敗しました")

	// ErrMultipleSaveFiles は複数のセーブファイルが見つかった場合のエラー
	ErrMultipleSaveFiles = errors.New("複数のセーブファイルが見つかりました。引数で使用するファイルを指定してください")
)
