// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shiroemons/go-sramr/internal/sramr/config"
	apperrors "github.com/shiroemons/go-sramr/internal/sramr/errors"
	"github.com/shiroemons/go-sramr/internal/sramr/fileutil"
	"github.com/shiroemons/go-sramr/internal/sramr/interfaces"
	"github.com/shiroemons/go-sramr/internal/sramr/models"
	"github.com/shiroemons/go-sramr/internal/sramr/render"
	"github.com/shiroemons/go-sramr/pkg/sram"
	"github.com/shiroemons/go-sramr/pkg/z3r"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config         *config.Config
	logger         interfaces.Logger
	saveFileFinder interfaces.SaveFileFinder
	fs             interfaces.FileSystem
	stdout         io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem     interfaces.FileSystem
	SaveFileFinder interfaces.SaveFileFinder
	Logger         interfaces.Logger
	Stdout         io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	finder := opts.SaveFileFinder
	if finder == nil {
		finder = fileutil.NewSaveFileFinder(fs)
	}

	var logger interfaces.Logger = config.NewDebugLogger(cfg.DebugMode)
	if opts.Logger != nil {
		logger = opts.Logger
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:         cfg,
		logger:         logger,
		saveFileFinder: finder,
		fs:             fs,
		stdout:         stdout,
	}
}

// Run はセーブデータを復号し、指定の形式で出力します
func (a *App) Run(ctx context.Context) error {
	save, err := a.load(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	report, err := z3r.Parse(save.Data, !a.config.NoValidate)
	if err != nil {
		return apperrors.NewSaveError("parse", save.Path, parseError(err))
	}
	a.logger.Printf("ファイル名 %q を復号しました\n", report.Meta.FileName)

	if err := ctx.Err(); err != nil {
		return err
	}
	content, err := a.render(report)
	if err != nil {
		return err
	}

	if a.config.OutputPath == "" {
		if _, err := a.stdout.Write(content); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	outputPath := a.outputPath(save.Path)
	if err := fileutil.SaveToFile(a.fs, outputPath, content); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	a.logger.Printf("データを %s に保存しました\n", outputPath)
	return nil
}

// outputPath は出力先を決定します。
// --output がディレクトリを指す場合は入力ファイル名から出力ファイル名を生成します。
func (a *App) outputPath(savePath string) string {
	out := a.config.OutputPath
	isDir := strings.HasSuffix(out, "/") || strings.HasSuffix(out, string(os.PathSeparator))
	if !isDir {
		if info, err := a.fs.Stat(out); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if !isDir {
		return out
	}
	return filepath.Join(out, fileutil.GenerateOutputFilename(savePath, a.config.Format))
}

// Validate はセーブデータを検証し、結果を表示します。
// 検証に失敗した場合は失敗した項目を表示し、エラーを返します。
func (a *App) Validate(ctx context.Context) error {
	save, err := a.load(ctx)
	if err != nil {
		return err
	}

	name := filepath.Base(save.Path)
	if err := sram.Validate(save.Data); err != nil {
		check := "unknown"
		var verr *sram.ValidationError
		if errors.As(err, &verr) {
			check = verr.Check
		}
		fmt.Fprintf(a.stdout, "%s: NG (%s)\n", name, check)
		return apperrors.NewSaveError("validate", save.Path, fmt.Errorf("%w: %w", apperrors.ErrInvalidSave, err))
	}

	fmt.Fprintf(a.stdout, "%s: OK\n", name)
	return nil
}

// ListFields は復号するフィールドの一覧を表形式で w に書き込みます
func (a *App) ListFields(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tNAME\tKIND\tOFFSET\tWIDTH\tSHIFT\tHIDDEN")
	for _, f := range Fields() {
		offset, width, shift := "-", "-", "-"
		if f.Offset >= 0 {
			offset = fmt.Sprintf("0x%03X", f.Offset)
			width = strconv.Itoa(f.Width)
			shift = strconv.Itoa(f.Shift)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n", f.Section, f.Name, f.Kind, offset, width, shift, f.Hidden)
	}
	return tw.Flush()
}

// Fields はすべてのカタログのフィールドを区分順に返します
func Fields() []models.FieldInfo {
	catalogs := []struct {
		section z3r.Section
		catalog *sram.Catalog
	}{
		{z3r.SectionMeta, z3r.MetaCatalog},
		{z3r.SectionStats, z3r.StatsCatalog},
		{z3r.SectionEquipment, z3r.EquipmentCatalog},
	}

	var fields []models.FieldInfo
	for _, c := range catalogs {
		for _, d := range c.catalog.Fields() {
			fields = append(fields, models.FieldInfo{
				Section: string(c.section),
				Name:    d.Name,
				Kind:    d.Kind.String(),
				Offset:  d.Offset,
				Width:   d.Width,
				Shift:   d.Shift,
				Hidden:  d.Hidden,
			})
		}
		for _, d := range c.catalog.Derivations() {
			fields = append(fields, models.FieldInfo{
				Section: string(c.section),
				Name:    d.Name,
				Kind:    "derived",
				Offset:  -1,
			})
		}
	}
	return fields
}

// load は入力ファイルを決定して読み込みます
func (a *App) load(ctx context.Context) (*models.LoadedSave, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := a.config.SavePath
	if path == "" {
		found, err := a.saveFileFinder.Find()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, apperrors.ErrNoSaveFound
		}
		a.logger.Printf("自動検出したセーブファイル %s を読み込みます...\n", filepath.Base(found))
		path = found
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !a.fs.FileExists(path) {
		return nil, apperrors.NewSaveError("load", path, apperrors.ErrFileNotFound)
	}
	save, err := fileutil.LoadSave(a.fs, path)
	if err != nil {
		return nil, apperrors.NewSaveError("load", path, err)
	}
	if save.Compressed {
		a.logger.Printf("zstd圧縮を展開しました (%d -> %d bytes)\n", save.RawSize, len(save.Data))
	}
	return save, nil
}

// render は復号結果を出力形式と文字コードに変換します
func (a *App) render(report *z3r.Report) ([]byte, error) {
	renderer, err := render.New(a.config.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, report, z3r.Section(a.config.Section)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	content, err := fileutil.Encode(buf.Bytes(), a.config.Encoding == config.EncodingShiftJIS, a.config.WithBOM)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return content, nil
}

func parseError(err error) error {
	if errors.Is(err, sram.ErrValidation) {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidSave, err)
	}
	return fmt.Errorf("%w: %w", apperrors.ErrParseFailure, err)
}
