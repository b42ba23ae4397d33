// Package sram はスーパーファミコン用ゲームのセーブデータ（SRAMイメージ）を
// 型付きのフィールドへ復号するためのパッケージです。
//
// 主な機能:
//   - Reader: バイトオフセット・ビット幅・シフト量を指定したビットフィールドの読み出し
//   - Classify: 読み出した整数を Boolean / Number / Fraction / Duration / Text に分類
//   - DecodeText: 独自の207文字グリフテーブルによるファイル名の復号
//   - Validate: サイズ・マーカー・ROM名・逆チェックサムによるイメージ全体の検証
//   - Decoder: フィールドカタログに従った一括復号と派生フィールドの計算
//
// 基本的な使い方:
//
//	catalog := sram.MustCatalog([]sram.Descriptor{
//	    sram.Number("bonks", 0x420, 8, 0),
//	    sram.Fraction("swords", 0x422, 3, 5, 4),
//	    sram.Duration("total time", 0x43E),
//	})
//	result, err := sram.NewDecoder(catalog).Decode(buf, true)
//	if err != nil {
//	    // 検証エラーまたはフィールドの復号エラー
//	}
//	for _, name := range result.Names() {
//	    v, _ := result.Get(name)
//	    fmt.Println(name, v)
//	}
//
// このパッケージはバッファを書き換えず、ファイルI/Oも行いません。
package sram
