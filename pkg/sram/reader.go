package sram

import (
	"encoding/binary"
	"fmt"
)

// MaxFieldBits はビットフィールドとして読み出せる最大ビット数（幅 + シフト）
const MaxFieldBits = 16

// Reader はSRAMイメージからビットフィールドと固定長の値を読み出します。
// Reader はバッファを書き換えないため、複数のゴルーチンから同時に使用できます。
type Reader struct {
	buf []byte
}

// NewReader は新しい Reader を作成します。
// buf は復号の間、呼び出し元が変更しないものとします。
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len はバッファ長を返します
func (r *Reader) Len() int {
	return len(r.buf)
}

// Bits は offset から width ビットを shift ビット右シフトして読み出します。
// width + shift が8以下なら1バイト、16以下なら2バイト（リトルエンディアン）を読み込みます。
func (r *Reader) Bits(offset, width, shift int) (uint32, error) {
	if width < 1 || width > MaxFieldBits || shift < 0 || shift >= MaxFieldBits {
		return 0, fmt.Errorf("%w: width %d, shift %d", ErrWidthOverflow, width, shift)
	}

	byteCount := (width + shift + 7) / 8
	var value uint32
	switch byteCount {
	case 1:
		if err := r.check(offset, 1); err != nil {
			return 0, err
		}
		value = uint32(r.buf[offset])
	case 2:
		if err := r.check(offset, 2); err != nil {
			return 0, err
		}
		value = uint32(binary.LittleEndian.Uint16(r.buf[offset:]))
	default:
		return 0, fmt.Errorf("%w: width %d, shift %d needs %d bytes", ErrWidthOverflow, width, shift, byteCount)
	}

	value >>= uint(shift)
	value &= bitmask(width)
	return value, nil
}

// Uint8 は offset の1バイトを読み出します
func (r *Reader) Uint8(offset int) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.buf[offset], nil
}

// Uint16 は offset から2バイトをリトルエンディアンで読み出します
func (r *Reader) Uint16(offset int) (uint16, error) {
	if err := r.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[offset:]), nil
}

// Uint32 は offset から4バイトをリトルエンディアンで読み出します。
// 経過時間（フレーム数）のフィールドはこの経路で読み出します。
func (r *Reader) Uint32(offset int) (uint32, error) {
	if err := r.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[offset:]), nil
}

// Bytes は offset から n バイトのスライスを返します。
// 返されたスライスはバッファを参照するため、変更してはいけません。
func (r *Reader) Bytes(offset, n int) ([]byte, error) {
	if err := r.check(offset, n); err != nil {
		return nil, err
	}
	return r.buf[offset : offset+n : offset+n], nil
}

// check は offset から n バイトがバッファ内に収まるか確認します
func (r *Reader) check(offset, n int) error {
	if offset < 0 || n < 0 || offset+n > len(r.buf) {
		return fmt.Errorf("%w: offset 0x%X, %d bytes, buffer %d bytes", ErrOutOfBounds, offset, n, len(r.buf))
	}
	return nil
}

func bitmask(bits int) uint32 {
	return (uint32(1) << uint(bits)) - 1
}
