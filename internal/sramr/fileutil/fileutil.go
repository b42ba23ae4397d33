// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-sramr/internal/sramr/interfaces"
	"github.com/shiroemons/go-sramr/internal/sramr/models"
	"github.com/shiroemons/go-sramr/internal/sramr/render"
)

var (
	// SaveFilePattern は xxx.srm や xxx.srm.zst ファイルのパターン
	SaveFilePattern = regexp.MustCompile(`(?i)^.+\.srm(?:\.zst)?$`)

	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// maxSaveSize は展開後に許容する最大サイズ。SRAMイメージより十分大きければよい
const maxSaveSize = 1 << 20

// ToShiftJIS はUTF-8からShift-JISに変換します
func ToShiftJIS(data []byte) ([]byte, error) {
	ret, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewEncoder()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeShiftJIS, err)
	}
	return ret, nil
}

// Encode は出力内容を指定の文字コードに変換します。
// sjis が true の場合はShift-JISに変換し、withBOM が true の場合はUTF-8 BOMを付与します。
func Encode(content []byte, sjis, withBOM bool) ([]byte, error) {
	if sjis {
		return ToShiftJIS(content)
	}
	if withBOM {
		out := make([]byte, 0, len(utf8BOM)+len(content))
		out = append(out, utf8BOM...)
		return append(out, content...), nil
	}
	return content, nil
}

// SaveToFile は fs を使ってファイルに保存します（出力先ディレクトリは必要に応じて作成）
func SaveToFile(fs interfaces.FileSystem, outputPath string, content []byte) error {
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}
	if err := fs.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// IsCompressed は data がzstdフレームで始まるかどうかを返します
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Decompress はzstd圧縮されたデータを展開します
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxSaveSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	return out, nil
}

// Compress はデータをzstd圧縮します
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// LoadSave はセーブファイルを読み込み、zstd圧縮されていれば展開します
func LoadSave(fs interfaces.FileSystem, path string) (*models.LoadedSave, error) {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSave, err)
	}

	save := &models.LoadedSave{Path: path, Data: raw, RawSize: len(raw)}
	if IsCompressed(raw) {
		data, err := Decompress(raw)
		if err != nil {
			return nil, err
		}
		save.Data = data
		save.Compressed = true
	}
	return save, nil
}

// GenerateOutputFilename は入力ファイル名と出力形式から出力ファイル名を生成します
func GenerateOutputFilename(inputPath, format string) string {
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, ".zst")
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	ext := format
	if ext == render.FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("%s.%s", baseName, ext)
}
