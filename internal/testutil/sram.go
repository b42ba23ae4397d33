// Package testutil はテスト用のSRAMイメージを組み立てるヘルパーを提供します
package testutil

import "encoding/binary"

const (
	sramSize          = 0x8000
	checksumEnd       = 0x4FE
	inverseChecksum   = 0x4FE
	fileNameHead      = 0x3D9
	fileNameTail      = 0x500
	hashIDOffset      = 0x2003
	romNameOffset     = 0x2000
	validityOffset    = 0x3E1
	fileMarkerOffset  = 0x4F0
	inverseChecksumTo = 0x5A5A
)

// SRAM はテスト用のSRAMイメージ
type SRAM []byte

// NewSRAM はROM名 "VT" の検証を通過するSRAMイメージを作成します
func NewSRAM() SRAM {
	s := make(SRAM, sramSize)
	binary.LittleEndian.PutUint16(s[validityOffset:], 0x55AA)
	s[fileMarkerOffset] = 0xFF
	s.SetROMName("VT")
	s.FixChecksum()
	return s
}

// SetROMName はROM名の先頭2文字を設定します
func (s SRAM) SetROMName(name string) SRAM {
	copy(s[romNameOffset:romNameOffset+2], name)
	return s
}

// SetHashID はROM名に続くハッシュIDを設定します
func (s SRAM) SetHashID(id string) SRAM {
	copy(s[hashIDOffset:hashIDOffset+10], id)
	return s
}

// SetUint8 は1バイトを書き込みます
func (s SRAM) SetUint8(offset int, v uint8) SRAM {
	s[offset] = v
	return s
}

// SetUint16 は2バイトをリトルエンディアンで書き込みます
func (s SRAM) SetUint16(offset int, v uint16) SRAM {
	binary.LittleEndian.PutUint16(s[offset:], v)
	return s
}

// SetUint32 は4バイトをリトルエンディアンで書き込みます
func (s SRAM) SetUint32(offset int, v uint32) SRAM {
	binary.LittleEndian.PutUint32(s[offset:], v)
	return s
}

// SetBits は offset の width ビットを shift の位置に書き込みます。他のビットは保持されます。
func (s SRAM) SetBits(offset, width, shift int, v uint32) SRAM {
	mask := uint16((1<<uint(width))-1) << uint(shift)
	if width+shift <= 8 {
		cur := uint16(s[offset])
		s[offset] = byte(cur&^mask | uint16(v)<<uint(shift)&mask)
		return s
	}
	cur := binary.LittleEndian.Uint16(s[offset:])
	binary.LittleEndian.PutUint16(s[offset:], cur&^mask|uint16(v)<<uint(shift)&mask)
	return s
}

// GlyphCode はグリフテーブルのインデックスをコード単位に変換します
func GlyphCode(index int) uint16 {
	return uint16(index&0x0F) | uint16(index&0xF0)<<1
}

// SetFileName はファイル名の12文字をグリフインデックスで設定します。
// 先頭4文字と残り8文字は別の領域に書き込まれます。
func (s SRAM) SetFileName(indexes ...int) SRAM {
	for i, idx := range indexes {
		offset := fileNameHead + i*2
		if i >= 4 {
			offset = fileNameTail + (i-4)*2
		}
		binary.LittleEndian.PutUint16(s[offset:], GlyphCode(idx))
	}
	return s
}

// FixChecksum は逆チェックサムを再計算して書き込みます
func (s SRAM) FixChecksum() SRAM {
	var sum uint16
	for i := 0; i < checksumEnd; i += 2 {
		sum += binary.LittleEndian.Uint16(s[i:])
	}
	binary.LittleEndian.PutUint16(s[inverseChecksum:], uint16(inverseChecksumTo)-sum)
	return s
}

// Bytes は []byte として返します
func (s SRAM) Bytes() []byte {
	return []byte(s)
}
