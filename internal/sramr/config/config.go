// Package config はz3rsramrコマンドの設定管理を行います
package config

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/shiroemons/go-sramr/internal/sramr/render"
	"github.com/shiroemons/go-sramr/pkg/z3r"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatJSON = render.FormatJSON
	FormatYAML = render.FormatYAML
	FormatText = render.FormatText
)

// 出力の文字コード
const (
	EncodingUTF8     = "utf8"
	EncodingShiftJIS = "sjis"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	SavePath    string
	Format      string
	Section     string
	OutputPath  string
	Encoding    string
	WithBOM     bool
	NoValidate  bool
	DebugMode   bool
	ShowVersion bool
}

// NewConfig はデフォルト値の設定を返します
func NewConfig() *Config {
	return &Config{
		Format:   FormatJSON,
		Section:  string(z3r.SectionAll),
		Encoding: EncodingUTF8,
	}
}

// BindFlags はフラグを cfg に関連付けます
func BindFlags(flags *pflag.FlagSet, cfg *Config) {
	// 出力形式
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format (json, yaml, text)")
	flags.StringVarP(&cfg.Section, "section", "s", cfg.Section, "section to output (all, meta, stats, equipment)")

	// 出力先
	flags.StringVarP(&cfg.OutputPath, "output", "o", "", "write output to the file instead of stdout")
	flags.StringVarP(&cfg.Encoding, "encoding", "e", cfg.Encoding, "output encoding (utf8, sjis)")
	flags.BoolVar(&cfg.WithBOM, "bom", false, "prepend a UTF-8 BOM to the output (utf8 only)")

	// 検証
	flags.BoolVar(&cfg.NoValidate, "no-validate", false, "decode without validating the save file")

	// デバッグモード
	flags.BoolVarP(&cfg.DebugMode, "debug", "d", false, "enable debug output")

	// バージョン表示
	flags.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version information")
}

// Validate は設定値を確認します
func (c *Config) Validate() error {
	if !slices.Contains(render.Formats(), c.Format) {
		return fmt.Errorf("%w: %q", render.ErrUnknownFormat, c.Format)
	}
	if !slices.Contains(z3r.Sections(), z3r.Section(c.Section)) {
		return fmt.Errorf("%w: %q", ErrUnknownSection, c.Section)
	}
	if c.Encoding != EncodingUTF8 && c.Encoding != EncodingShiftJIS {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}
	if c.WithBOM && c.Encoding != EncodingUTF8 {
		return fmt.Errorf("%w: --bom は utf8 でのみ使用できます", ErrUnknownEncoding)
	}
	return nil
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(w io.Writer, showVersion bool) bool {
	if showVersion {
		fmt.Fprintf(w, "z3rsramr version %s\n", Version)
	}
	return showVersion
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	logger *logrus.Logger
}

// NewDebugLogger は標準エラー出力に書き込む新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerWithWriter(enabled, os.Stderr)
}

// NewDebugLoggerWithWriter は w に書き込む新しいDebugLoggerを作成します
func NewDebugLoggerWithWriter(enabled bool, w io.Writer) *DebugLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return &DebugLogger{logger: logger}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	d.logger.Debugf(format, a...)
}

// Enabled はデバッグ出力が有効かどうかを返します
func (d *DebugLogger) Enabled() bool {
	return d.logger.IsLevelEnabled(logrus.DebugLevel)
}
