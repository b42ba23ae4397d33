package sram

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// SRAMイメージのレイアウト定数
const (
	// Size はSRAMイメージのサイズ（v30.0.4, 2019-11-15 のROMビルド以降）
	Size = 0x8000

	ChecksumValidityOffset = 0x3E1
	ChecksumValidityValue  = 0x55AA

	// FileMarkerOffset はランダマイザ固有のファイルマーカーの位置
	FileMarkerOffset = 0x4F0
	FileMarkerValue  = 0xFF

	ROMNameOffset = 0x2000
	ROMNameLength = 2

	// ChecksumEnd はチェックサム計算範囲の終端（この位置を含まない）
	ChecksumEnd           = 0x4FE
	InverseChecksumOffset = 0x4FE
	InverseChecksumBase   = 0x5A5A
)

// 検証項目の名前
const (
	CheckSize     = "size"
	CheckMarker   = "marker"
	CheckIdentity = "identity"
	CheckChecksum = "checksum"
)

var romNames = [...]string{"VT", "ER"}

// ROMNames は認識するROM名の一覧を返します
func ROMNames() []string {
	return append([]string(nil), romNames[:]...)
}

// Validate はSRAMイメージ全体を検証します。
// サイズ、マーカー、ROM名、逆チェックサムの順に確認し、最初に失敗した項目の
// *ValidationError を返します。
func Validate(buf []byte) error {
	if len(buf) != Size {
		return &ValidationError{
			Check: CheckSize,
			Err:   fmt.Errorf("%w: got %d bytes, want %d", ErrSize, len(buf), Size),
		}
	}

	validity := binary.LittleEndian.Uint16(buf[ChecksumValidityOffset:])
	if validity != ChecksumValidityValue || buf[FileMarkerOffset] != FileMarkerValue {
		return &ValidationError{
			Check: CheckMarker,
			Err:   fmt.Errorf("%w: validity 0x%04X, marker 0x%02X", ErrMarker, validity, buf[FileMarkerOffset]),
		}
	}

	name := string(buf[ROMNameOffset : ROMNameOffset+ROMNameLength])
	if !slices.Contains(romNames[:], name) {
		return &ValidationError{
			Check: CheckIdentity,
			Err:   fmt.Errorf("%w: %q", ErrIdentity, name),
		}
	}

	expected := InverseChecksum(buf)
	stored := binary.LittleEndian.Uint16(buf[InverseChecksumOffset:])
	if stored != expected {
		return &ValidationError{
			Check: CheckChecksum,
			Err:   fmt.Errorf("%w: stored 0x%04X, expected 0x%04X", ErrChecksum, stored, expected),
		}
	}

	return nil
}

// IsValid は Validate が成功するかどうかを返します
func IsValid(buf []byte) bool {
	return Validate(buf) == nil
}

// Checksum は先頭から ChecksumEnd までを2バイトずつ加算した16ビットの和を返します。
// buf が ChecksumEnd に満たない場合は読める範囲のみを加算します。
func Checksum(buf []byte) uint16 {
	end := ChecksumEnd
	if len(buf) < end {
		end = len(buf) &^ 1
	}

	var sum uint16
	for i := 0; i < end; i += 2 {
		sum += binary.LittleEndian.Uint16(buf[i:])
	}
	return sum
}

// InverseChecksum は buf に格納されるべき逆チェックサムを返します
func InverseChecksum(buf []byte) uint16 {
	return InverseChecksumBase - Checksum(buf)
}
