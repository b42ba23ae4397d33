package sram

import "fmt"

// glyphTable はファイル名で使用される文字のテーブル。
// ひらがな、カタカナ、数字、英大文字、記号の順で並びます。
var glyphTable = [207]string{
	"あ", "い", "う", "え", "お", "や", "ゆ", "よ", "か", "き", "く", "け", "こ", "わ", "を",
	"ん", "さ", "し", "す", "せ", "そ", "が", "ぎ", "ぐ", "た", "ち", "つ", "て", "と", "げ",
	"ご", "ざ", "な", "に", "ぬ", "ね", "の", "じ", "ず", "ぜ", "は", "ひ", "ふ", "へ", "ほ",
	"ぞ", "だ", "ぢ", "ま", "み", "む", "め", "も", "づ", "で", "ど", "ら", "り", "る", "れ",
	"ろ", "ば", "び", "ぶ", "べ", "ぼ", "ぱ", "ぴ", "ぷ", "ぺ", "ぽ", "ゃ", "ゅ", "ょ", "っ",
	"ぁ", "ぃ", "ぅ", "ぇ", "ぉ", "ア", "イ", "ウ", "エ", "オ", "ヤ", "ユ", "ヨ", "カ", "キ",
	"ク", "ケ", "コ", "ワ", "ヲ", "ン", "サ", "シ", "ス", "セ", "ソ", "ガ", "ギ", "グ", "タ",
	"チ", "ツ", "テ", "ト", "ゲ", "ゴ", "ザ", "ナ", "ニ", "ヌ", "ネ", "ノ", "ジ", "ズ", "ゼ",
	"ハ", "ヒ", "フ", "ヘ", "ホ", "ゾ", "ダ", "ヂ", "マ", "ミ", "ム", "メ", "モ", "ヅ", "デ",
	"ド", "ラ", "リ", "ル", "レ", "ロ", "バ", "ビ", "ブ", "ベ", "ボ", "パ", "ピ", "プ", "ペ",
	"ポ", "ャ", "ュ", "ョ", "ッ", "ァ", "ィ", "ゥ", "ェ", "ォ", "0", "1", "2", "3", "4",
	"5", "6", "7", "8", "9", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
	"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y",
	"Z", "「", "」", "?", "!", ",", "-", "<", ">", " ", "。", "~",
}

// FileNameSegments はファイル名が格納されている2つの領域（4文字 + 8文字）を返します
func FileNameSegments() []Segment {
	return []Segment{
		{Offset: 0x3D9, Count: 4},
		{Offset: 0x500, Count: 8},
	}
}

// Segment は16ビットのコード単位が連続して並ぶ領域
type Segment struct {
	Offset int // 開始バイトオフセット
	Count  int // コード単位の数
}

// Glyphs はグリフテーブルのコピーを返します
func Glyphs() []string {
	glyphs := make([]string, len(glyphTable))
	copy(glyphs, glyphTable[:])
	return glyphs
}

// GlyphIndex はコード単位からグリフテーブルのインデックスを求めます
func GlyphIndex(code uint16) int {
	return int((code & 0xF) | ((code >> 1) & 0xF0))
}

// DecodeGlyph はコード単位を1文字に変換します
func DecodeGlyph(code uint16) (string, error) {
	index := GlyphIndex(code)
	if index >= len(glyphTable) {
		return "", fmt.Errorf("%w: code 0x%04X, index %d", ErrGlyphIndexOutOfRange, code, index)
	}
	return glyphTable[index], nil
}

// DecodeText は各領域のコード単位を順に復号し、区切りなしで連結します
func DecodeText(r *Reader, segments ...Segment) (string, error) {
	size := 0
	for _, seg := range segments {
		size += seg.Count * 3 // 全角文字はUTF-8で3バイト
	}

	buf := make([]byte, 0, size)
	for _, seg := range segments {
		for i := 0; i < seg.Count; i++ {
			offset := seg.Offset + i*2
			code, err := r.Uint16(offset)
			if err != nil {
				return "", err
			}
			glyph, err := DecodeGlyph(code)
			if err != nil {
				return "", fmt.Errorf("at 0x%X: %w", offset, err)
			}
			buf = append(buf, glyph...)
		}
	}
	return string(buf), nil
}
