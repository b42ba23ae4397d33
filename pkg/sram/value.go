package sram

import (
	"fmt"
	"strconv"
)

// Kind はフィールドの出力種別
type Kind int

const (
	KindBoolean Kind = iota
	KindNumber
	KindFraction
	KindDuration
	KindText
)

// String は種別名を返します
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindFraction:
		return "fraction"
	case KindDuration:
		return "duration"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value は復号されたフィールドの値です。
// Kind に応じて保持する内容が異なります:
//   - KindBoolean: 真偽値
//   - KindNumber: 整数
//   - KindFraction: 分子と分母
//   - KindDuration: フレーム数
//   - KindText: 文字列
type Value struct {
	kind Kind
	num  uint32
	den  uint32
	text string
}

// BoolValue は Boolean の Value を作成します
func BoolValue(b bool) Value {
	v := Value{kind: KindBoolean}
	if b {
		v.num = 1
	}
	return v
}

// NumberValue は Number の Value を作成します
func NumberValue(n uint32) Value {
	return Value{kind: KindNumber, num: n}
}

// FractionValue は Fraction の Value を作成します
func FractionValue(numerator, denominator uint32) Value {
	return Value{kind: KindFraction, num: numerator, den: denominator}
}

// DurationValue はフレーム数から Duration の Value を作成します
func DurationValue(frames uint32) Value {
	return Value{kind: KindDuration, num: frames}
}

// TextValue は Text の Value を作成します
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind は値の種別を返します
func (v Value) Kind() Kind {
	return v.kind
}

// Bool は Boolean の値を返します。Boolean 以外では false を返します
func (v Value) Bool() bool {
	return v.kind == KindBoolean && v.num == 1
}

// Number は数値としての値を返します。
// Fraction では分子、Duration ではフレーム数、Boolean では0か1を返します。
func (v Value) Number() uint32 {
	if v.kind == KindText {
		return 0
	}
	return v.num
}

// Denominator は Fraction の分母を返します
func (v Value) Denominator() uint32 {
	return v.den
}

// Frames は Duration のフレーム数を返します
func (v Value) Frames() uint32 {
	if v.kind != KindDuration {
		return 0
	}
	return v.num
}

// Text は Text の文字列を返します
func (v Value) Text() string {
	return v.text
}

// IsNumeric は数値演算に使える値かどうかを返します
func (v Value) IsNumeric() bool {
	switch v.kind {
	case KindNumber, KindFraction, KindDuration:
		return true
	}
	return false
}

// Truthy は Boolean ならその値、数値なら0以外かどうかを返します
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBoolean:
		return v.num == 1
	case KindText:
		return v.text != ""
	}
	return v.num != 0
}

// String は表示用の文字列を返します
func (v Value) String() string {
	switch v.kind {
	case KindBoolean:
		return strconv.FormatBool(v.Bool())
	case KindNumber:
		return strconv.FormatUint(uint64(v.num), 10)
	case KindFraction:
		return fmt.Sprintf("%d/%d", v.num, v.den)
	case KindDuration:
		return FormatFrames(v.num)
	case KindText:
		return v.text
	}
	return ""
}

// Native はレンダラ向けにGoの値を返します。
// Boolean は bool、Number は uint32、それ以外は表示用の文字列です。
func (v Value) Native() any {
	switch v.kind {
	case KindBoolean:
		return v.Bool()
	case KindNumber:
		return v.num
	}
	return v.String()
}

// Classify は読み出した整数を kind に従って Value に変換します。
// Boolean は0と1以外をエラーとし、非0を true とみなすことはしません。
// Duration の raw はフレーム数、Text は扱えません（DecodeText を使用）。
func Classify(raw uint32, kind Kind, denominator uint32) (Value, error) {
	switch kind {
	case KindBoolean:
		switch raw {
		case 0:
			return BoolValue(false), nil
		case 1:
			return BoolValue(true), nil
		}
		return Value{}, fmt.Errorf("%w: got %d", ErrInvalidBoolean, raw)
	case KindNumber:
		return NumberValue(raw), nil
	case KindFraction:
		return FractionValue(raw, denominator), nil
	case KindDuration:
		return DurationValue(raw), nil
	}
	return Value{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}
