package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-sramr/internal/sramr/config"
	apperrors "github.com/shiroemons/go-sramr/internal/sramr/errors"
	"github.com/shiroemons/go-sramr/internal/sramr/fileutil"
	"github.com/shiroemons/go-sramr/internal/sramr/mocks"
	"github.com/shiroemons/go-sramr/internal/testutil"
	"github.com/shiroemons/go-sramr/pkg/sram"
)

func sampleSave() []byte {
	return testutil.NewSRAM().
		SetHashID("Ab3dE6gH9j").
		SetFileName(181, 178, 183, 180, 204, 204, 204, 204, 204, 204, 204, 204).
		SetUint8(0x423, 100).
		SetUint8(0x442, 60).
		FixChecksum().
		Bytes()
}

type testApp struct {
	app    *App
	fs     *mocks.MockFileSystem
	finder *mocks.MockSaveFileFinder
	logger *mocks.MockLogger
	stdout *bytes.Buffer
}

func newTestApp(cfg *config.Config) *testApp {
	fs := mocks.NewMockFileSystem()
	fs.Files["/saves/alttpr.srm"] = sampleSave()

	ta := &testApp{
		fs:     fs,
		finder: &mocks.MockSaveFileFinder{FoundFile: "/saves/alttpr.srm"},
		logger: &mocks.MockLogger{},
		stdout: &bytes.Buffer{},
	}
	ta.app = NewWithOptions(cfg, Options{
		FileSystem:     ta.fs,
		SaveFileFinder: ta.finder,
		Logger:         ta.logger,
		Stdout:         ta.stdout,
	})
	return ta
}

func TestApp_Run(t *testing.T) {
	cfg := config.NewConfig()
	ta := newTestApp(cfg)

	require.NoError(t, ta.app.Run(context.Background()))
	require.Equal(t, 1, ta.finder.Calls)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))
	require.Equal(t, "LINK        ", got["meta"]["filename"])
	require.Equal(t, "100/216", got["stats"]["collection rate"])
	require.Equal(t, float64(40), got["stats"]["other locations"])
}

func TestApp_Run_Formats(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		check  func(t *testing.T, out []byte)
	}{
		{
			name:   "YAML形式の統計",
			modify: func(c *config.Config) { c.Format = config.FormatYAML; c.Section = "stats" },
			check: func(t *testing.T, out []byte) {
				require.True(t, strings.HasPrefix(string(out), "collection rate: 100/216\n"), string(out))
				require.NotContains(t, string(out), "filename")
			},
		},
		{
			name:   "テキスト形式のメタ情報",
			modify: func(c *config.Config) { c.Format = config.FormatText; c.Section = "meta" },
			check: func(t *testing.T, out []byte) {
				require.Contains(t, string(out), "hash id   : Ab3dE6gH9j\n")
			},
		},
		{
			name:   "BOM付き",
			modify: func(c *config.Config) { c.WithBOM = true },
			check: func(t *testing.T, out []byte) {
				require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
			},
		},
		{
			name: "Shift_JIS",
			modify: func(c *config.Config) {
				c.Format = config.FormatText
				c.Section = "meta"
				c.Encoding = config.EncodingShiftJIS
			},
			check: func(t *testing.T, out []byte) {
				back, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), out)
				require.NoError(t, err)
				require.Contains(t, string(back), "filename  : LINK")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.modify(cfg)
			ta := newTestApp(cfg)

			require.NoError(t, ta.app.Run(context.Background()))
			tt.check(t, ta.stdout.Bytes())
		})
	}
}

func TestApp_Run_OutputFile(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SavePath = "/saves/alttpr.srm"
	cfg.OutputPath = "/out/report.json"
	ta := newTestApp(cfg)

	require.NoError(t, ta.app.Run(context.Background()))
	require.Zero(t, ta.finder.Calls)
	require.Zero(t, ta.stdout.Len())
	require.True(t, ta.fs.Dirs["/out"])
	require.Contains(t, string(ta.fs.Files["/out/report.json"]), `"hash id": "Ab3dE6gH9j"`)
	require.NotEmpty(t, ta.logger.Messages)
}

func TestApp_Run_OutputDirectory(t *testing.T) {
	tests := []struct {
		name     string
		savePath string
		output   string
		format   string
		setup    func(fs *mocks.MockFileSystem)
		wantFile string
	}{
		{
			name:     "既存のディレクトリ",
			savePath: "/saves/alttpr.srm",
			output:   "/out",
			format:   config.FormatJSON,
			setup:    func(fs *mocks.MockFileSystem) { fs.Dirs["/out"] = true },
			wantFile: "/out/alttpr.json",
		},
		{
			name:     "末尾がスラッシュ",
			savePath: "/saves/alttpr.srm",
			output:   "/reports/",
			format:   config.FormatText,
			wantFile: "/reports/alttpr.txt",
		},
		{
			name:     "zstd圧縮の入力",
			savePath: "/saves/seed.srm.zst",
			output:   "/out",
			format:   config.FormatYAML,
			setup:    func(fs *mocks.MockFileSystem) { fs.Dirs["/out"] = true },
			wantFile: "/out/seed.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.SavePath = tt.savePath
			cfg.OutputPath = tt.output
			cfg.Format = tt.format
			ta := newTestApp(cfg)
			ta.fs.Files[tt.savePath] = sampleSave()
			if tt.setup != nil {
				tt.setup(ta.fs)
			}

			require.NoError(t, ta.app.Run(context.Background()))
			require.Contains(t, ta.fs.Files, tt.wantFile)
			require.NotEmpty(t, ta.fs.Files[tt.wantFile])
		})
	}
}

func TestApp_Run_Compressed(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SavePath = "/saves/alttpr.srm.zst"
	ta := newTestApp(cfg)

	packed, err := fileutil.Compress(sampleSave())
	require.NoError(t, err)
	ta.fs.Files[cfg.SavePath] = packed

	require.NoError(t, ta.app.Run(context.Background()))
	require.Contains(t, ta.stdout.String(), `"filename": "LINK        "`)
}

func TestApp_Run_Errors(t *testing.T) {
	corrupt := sampleSave()
	corrupt[0x10] ^= 0xFF

	tests := []struct {
		name    string
		setup   func(ta *testApp)
		modify  func(*config.Config)
		wantErr error
	}{
		{
			name:    "セーブファイルが見つからない",
			setup:   func(ta *testApp) { ta.finder.FoundFile = "" },
			wantErr: apperrors.ErrNoSaveFound,
		},
		{
			name:    "検索エラー",
			setup:   func(ta *testApp) { ta.finder.Error = fileutil.ErrMultipleSaveFiles },
			wantErr: fileutil.ErrMultipleSaveFiles,
		},
		{
			name:    "ファイルが存在しない",
			setup:   func(ta *testApp) { ta.finder.FoundFile = "/saves/missing.srm" },
			wantErr: apperrors.ErrFileNotFound,
		},
		{
			name:    "読み込みエラー",
			setup:   func(ta *testApp) { ta.fs.Error = errors.New("read error") },
			wantErr: fileutil.ErrReadSave,
		},
		{
			name:    "チェックサム不一致",
			setup:   func(ta *testApp) { ta.fs.Files["/saves/alttpr.srm"] = corrupt },
			wantErr: sram.ErrChecksum,
		},
		{
			name:    "無効なセーブデータ",
			setup:   func(ta *testApp) { ta.fs.Files["/saves/alttpr.srm"] = make([]byte, 16) },
			wantErr: apperrors.ErrInvalidSave,
		},
		{
			name:    "未対応の区分",
			modify:  func(c *config.Config) { c.Section = "items" },
			wantErr: ErrRender,
		},
		{
			name:    "保存エラー",
			setup:   func(ta *testApp) { ta.fs.WriteError = errors.New("disk full") },
			modify:  func(c *config.Config) { c.OutputPath = "/out/report.json" },
			wantErr: ErrSaveFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			if tt.modify != nil {
				tt.modify(cfg)
			}
			ta := newTestApp(cfg)
			if tt.setup != nil {
				tt.setup(ta)
			}

			err := ta.app.Run(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_NoValidate(t *testing.T) {
	corrupt := sampleSave()
	corrupt[0x4FE] ^= 0xFF

	cfg := config.NewConfig()
	cfg.NoValidate = true
	ta := newTestApp(cfg)
	ta.fs.Files["/saves/alttpr.srm"] = corrupt

	require.NoError(t, ta.app.Run(context.Background()))

	var saveErr *apperrors.SaveError
	cfg.NoValidate = false
	err := ta.app.Run(context.Background())
	require.ErrorAs(t, err, &saveErr)
	require.Equal(t, "parse", saveErr.Op)
	require.Equal(t, "/saves/alttpr.srm", saveErr.Path)
}

func TestApp_Run_ContextCancellation(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() (context.Context, context.CancelFunc)
		expectedError error
	}{
		{
			name: "即座にキャンセルされたコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			expectedError: context.Canceled,
		},
		{
			name: "タイムアウトコンテキスト",
			setupContext: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
				<-ctx.Done()
				return ctx, cancel
			},
			expectedError: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.setupContext()
			defer cancel()

			ta := newTestApp(config.NewConfig())
			require.ErrorIs(t, ta.app.Run(ctx), tt.expectedError)
			require.ErrorIs(t, ta.app.Validate(ctx), tt.expectedError)
			require.Zero(t, ta.finder.Calls)
			require.Zero(t, ta.stdout.Len())
		})
	}
}

func TestApp_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    func() []byte
		want    string
		wantErr error
	}{
		{name: "正常なセーブデータ", data: sampleSave, want: "alttpr.srm: OK\n"},
		{
			name: "ROM名が不正",
			data: func() []byte {
				return testutil.NewSRAM().SetROMName("XX").FixChecksum().Bytes()
			},
			want:    "alttpr.srm: NG (identity)\n",
			wantErr: sram.ErrIdentity,
		},
		{
			name:    "サイズ不足",
			data:    func() []byte { return make([]byte, 100) },
			want:    "alttpr.srm: NG (size)\n",
			wantErr: apperrors.ErrInvalidSave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(config.NewConfig())
			ta.fs.Files["/saves/alttpr.srm"] = tt.data()

			err := ta.app.Validate(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, ta.stdout.String())
		})
	}
}

func TestApp_ListFields(t *testing.T) {
	ta := newTestApp(config.NewConfig())

	var buf bytes.Buffer
	require.NoError(t, ta.app.ListFields(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, len(Fields())+1)
	require.True(t, strings.HasPrefix(lines[0], "SECTION"))
	require.Contains(t, buf.String(), "0x423")
	require.Regexp(t, `stats\s+lag time\s+derived\s+-`, buf.String())
	require.Regexp(t, `stats\s+loop time\s+duration\s+0x42E\s+32\s+0\s+true`, buf.String())
}

func TestFields(t *testing.T) {
	fields := Fields()
	require.NotEmpty(t, fields)
	require.Equal(t, "meta", fields[0].Section)
	require.Equal(t, "filename", fields[0].Name)
	require.Equal(t, 0x3D9, fields[0].Offset)

	sections := map[string]int{}
	for _, f := range fields {
		sections[f.Section]++
	}
	require.Len(t, sections, 3)
}
