package sram

import "fmt"

// Descriptor は1つのフィールドの位置と出力種別を表します
type Descriptor struct {
	Name        string
	Offset      int       // バイトオフセット
	Width       int       // ビット幅 (1-16)
	Shift       int       // シフト量 (0-15)
	Kind        Kind      // 出力種別
	Denominator uint32    // KindFraction の分母
	Segments    []Segment // KindText の領域

	// Hidden なフィールドは派生フィールドの計算にのみ使われ、Result には含まれません
	Hidden bool
}

// Number は整数フィールドの Descriptor を作成します
func Number(name string, offset, width, shift int) Descriptor {
	return Descriptor{Name: name, Offset: offset, Width: width, Shift: shift, Kind: KindNumber}
}

// Fraction は分母付きフィールドの Descriptor を作成します
func Fraction(name string, offset, width, shift int, denominator uint32) Descriptor {
	return Descriptor{Name: name, Offset: offset, Width: width, Shift: shift, Kind: KindFraction, Denominator: denominator}
}

// Flag は真偽値フィールドの Descriptor を作成します
func Flag(name string, offset, width, shift int) Descriptor {
	return Descriptor{Name: name, Offset: offset, Width: width, Shift: shift, Kind: KindBoolean}
}

// Duration は4バイトのフレーム数フィールドの Descriptor を作成します
func Duration(name string, offset int) Descriptor {
	return Descriptor{Name: name, Offset: offset, Width: 32, Kind: KindDuration}
}

// Text はグリフテーブルで復号する文字列フィールドの Descriptor を作成します
func Text(name string, segments ...Segment) Descriptor {
	d := Descriptor{Name: name, Kind: KindText, Segments: append([]Segment(nil), segments...)}
	if len(segments) > 0 {
		d.Offset = segments[0].Offset
	}
	return d
}

// AsHidden は Hidden を設定したコピーを返します
func (d Descriptor) AsHidden() Descriptor {
	d.Hidden = true
	return d
}

// Check は Descriptor の制約を確認します
func (d Descriptor) Check() error {
	switch d.Kind {
	case KindBoolean, KindNumber, KindFraction:
		if d.Width < 1 || d.Shift < 0 || d.Width+d.Shift > MaxFieldBits {
			return fmt.Errorf("%w: width %d, shift %d", ErrWidthOverflow, d.Width, d.Shift)
		}
	case KindDuration:
	case KindText:
		if len(d.Segments) == 0 {
			return fmt.Errorf("text field %q has no segments", d.Name)
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, d.Kind)
	}
	if d.Kind != KindText && d.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrOutOfBounds, d.Offset)
	}
	return nil
}

// read は Descriptor に従って値を読み出します
func (d Descriptor) read(r *Reader) (Value, error) {
	switch d.Kind {
	case KindText:
		text, err := DecodeText(r, d.Segments...)
		if err != nil {
			return Value{}, err
		}
		return TextValue(text), nil
	case KindDuration:
		frames, err := r.Uint32(d.Offset)
		if err != nil {
			return Value{}, err
		}
		return DurationValue(frames), nil
	}

	raw, err := r.Bits(d.Offset, d.Width, d.Shift)
	if err != nil {
		return Value{}, err
	}
	return Classify(raw, d.Kind, d.Denominator)
}
