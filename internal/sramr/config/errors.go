package config

import "errors"

var (
	// ErrUnknownSection は未対応の区分が指定された場合のエラー
	ErrUnknownSection = errors.New("未対応の区分です")

	// ErrUnknownEncoding は未対応の文字コードが指定された場合のエラー
	ErrUnknownEncoding = errors.New("未対応の文字コードです")
)
