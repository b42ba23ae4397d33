package sram

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation は4つの検証のいずれかに失敗した場合に ValidationError が一致するエラー
	ErrValidation = errors.New("validation failed")

	// ErrSize はバッファ長が Size と一致しない場合のエラー
	ErrSize = errors.New("unexpected file size")

	// ErrMarker はチェックサム有効マーカーまたはファイルマーカーが不正な場合のエラー
	ErrMarker = errors.New("invalid file marker")

	// ErrIdentity はROM名が既知のものでない場合のエラー
	ErrIdentity = errors.New("invalid ROM name")

	// ErrChecksum は逆チェックサムが一致しない場合のエラー
	ErrChecksum = errors.New("invalid checksum")

	// ErrOutOfBounds はバッファの終端を越えて読み出そうとした場合のエラー
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrWidthOverflow はビットフィールドが2バイトに収まらない場合のエラー
	ErrWidthOverflow = errors.New("bit field does not fit in two bytes")

	// ErrInvalidBoolean は Boolean フィールドの値が0でも1でもない場合のエラー
	ErrInvalidBoolean = errors.New("expected boolean value")

	// ErrGlyphIndexOutOfRange はグリフテーブルの範囲外のインデックスを復号した場合のエラー
	ErrGlyphIndexOutOfRange = errors.New("glyph index out of range")

	// ErrUnknownKind は未知の出力種別が指定された場合のエラー
	ErrUnknownKind = errors.New("unknown output kind")

	// ErrDuplicateField はカタログ内でフィールド名が重複している場合のエラー
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownField は派生フィールドの依存先が見つからない場合のエラー
	ErrUnknownField = errors.New("unknown field")

	// ErrNotNumeric は数値でない値に対して数値演算を行おうとした場合のエラー
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrNegativeDifference は差分フィールドが負になる場合のエラー
	ErrNegativeDifference = errors.New("difference would be negative")
)

// ValidationError は失敗した検証項目を保持します
type ValidationError struct {
	Check string // 失敗した検証項目
	Err   error  // ErrSize, ErrMarker, ErrIdentity, ErrChecksum のいずれか
}

// Error はエラーメッセージを返します
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %v", e.Check, e.Err)
}

// Unwrap は元のエラーを返します
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is は ErrValidation との比較を可能にします
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FieldError はフィールド単位の復号エラー
type FieldError struct {
	Field  string // フィールド名
	Offset int    // バイトオフセット（派生フィールドの場合は -1）
	Err    error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FieldError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("field %q at 0x%X: %v", e.Field, e.Offset, e.Err)
}

// Unwrap は元のエラーを返します
func (e *FieldError) Unwrap() error {
	return e.Err
}
