// Package models はz3rsramrコマンドで使用するデータモデルを定義します
package models

// LoadedSave は読み込んだセーブデータを表します
type LoadedSave struct {
	Path       string
	Data       []byte // 展開後のSRAMイメージ
	Compressed bool   // zstd圧縮されていたかどうか
	RawSize    int    // ファイル上のサイズ
}

// FieldInfo はカタログ一覧の1行を表します
type FieldInfo struct {
	Section string
	Name    string
	Kind    string
	Offset  int // 派生フィールドの場合は -1
	Width   int
	Shift   int
	Hidden  bool
}
