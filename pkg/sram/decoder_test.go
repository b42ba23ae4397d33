package sram

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shiroemons/go-sramr/internal/testutil"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Descriptor{
		Text("name", FileNameSegments()...),
		Number("rupees", 0x362, 16, 0),
		Fraction("swords", 0x422, 3, 5, 4),
		Fraction("crystals", 0x422, 3, 0, 7),
		Number("chests", 0x442, 8, 0),
		Fraction("total", 0x423, 8, 0, 216),
		Flag("lamp", 0x34A, 8, 0),
		Flag("bow", 0x38E, 1, 7).AsHidden(),
		Flag("silver bow", 0x38E, 1, 6).AsHidden(),
		Number("bottle 1", 0x35C, 8, 0),
		Number("bottle 2", 0x35D, 8, 0),
		Number("bottle 3", 0x35E, 8, 0),
		Duration("total time", 0x43E),
		Duration("loop time", 0x42E).AsHidden(),
	},
		Difference("other", "total", "chests"),
		AnyOf("has bow", "bow", "silver bow"),
		CountNonZero("bottles", "bottle 1", "bottle 2", "bottle 3"),
		Difference("lag time", "total time", "loop time"),
	)
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	return c
}

func testImage() testutil.SRAM {
	return testutil.NewSRAM().
		SetFileName(181, 178, 183, 180).
		SetUint16(0x362, 999).
		SetBits(0x422, 3, 5, 4).
		SetBits(0x422, 3, 0, 7).
		SetUint8(0x442, 120).
		SetUint8(0x423, 216).
		SetUint8(0x34A, 1).
		SetBits(0x38E, 1, 6, 1).
		SetUint8(0x35C, 2).
		SetUint8(0x35E, 6).
		SetUint32(0x43E, 216000+3600*30+60*15+30).
		SetUint32(0x42E, 216000+3600*20).
		FixChecksum()
}

func TestDecoder_Decode(t *testing.T) {
	c := testCatalog(t)
	result, err := NewDecoder(c).Decode(testImage().Bytes(), true)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	want := map[string]string{
		"name":       "LINKああああああああ",
		"rupees":     "999",
		"swords":     "4/4",
		"crystals":   "7/7",
		"chests":     "120",
		"total":      "216/216",
		"lamp":       "true",
		"bottle 1":   "2",
		"bottle 2":   "0",
		"bottle 3":   "6",
		"total time": "01:30:15.30",
		"other":      "96",
		"has bow":    "true",
		"bottles":    "2",
		"lag time":   "00:10:15.30",
	}
	if got := result.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v\nwant %v", got, want)
	}

	// 隠しフィールドは結果に含まれない
	for _, name := range []string{"bow", "silver bow", "loop time"} {
		if _, ok := result.Get(name); ok {
			t.Errorf("hidden field %q should not be in the result", name)
		}
	}
	if result.Len() != c.Len() {
		t.Errorf("Len() = %d, want %d", result.Len(), c.Len())
	}

	// 順序はカタログの定義順、派生フィールドは最後
	names := result.Names()
	if names[0] != "name" || names[len(names)-1] != "lag time" {
		t.Errorf("Names() = %v", names)
	}

	lag, _ := result.Get("lag time")
	if lag.Kind() != KindDuration || lag.Frames() != 3600*10+60*15+30 {
		t.Errorf("lag time = %v (%v)", lag, lag.Kind())
	}
	other, _ := result.Get("other")
	if other.Kind() != KindNumber {
		t.Errorf("other kind = %v, want number", other.Kind())
	}

	m := result.Map()
	if m["rupees"] != uint32(999) || m["lamp"] != true || m["swords"] != "4/4" {
		t.Errorf("Map() = %v", m)
	}
}

func TestDecoder_Decode_Validation(t *testing.T) {
	c := testCatalog(t)
	buf := testImage().SetUint8(0x100, 0x01).Bytes() // チェックサムを更新しない

	if _, err := Decode(buf, c, true); !errors.Is(err, ErrChecksum) {
		t.Errorf("Decode(validate=true) error = %v, want ErrChecksum", err)
	}
	if _, err := Decode(buf, c, false); err != nil {
		t.Errorf("Decode(validate=false) error: %v", err)
	}
}

func TestDecoder_Decode_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		image     func() []byte
		wantErr   error
		wantField string
	}{
		{
			name:      "Booleanが2",
			image:     func() []byte { return testImage().SetUint8(0x34A, 2).Bytes() },
			wantErr:   ErrInvalidBoolean,
			wantField: "lamp",
		},
		{
			name:      "ファイル名のグリフが範囲外",
			image:     func() []byte { return testImage().SetUint16(0x3D9, 0x01FF).Bytes() },
			wantErr:   ErrGlyphIndexOutOfRange,
			wantField: "name",
		},
		{
			name:      "差分が負",
			image:     func() []byte { return testImage().SetUint8(0x442, 217).Bytes() },
			wantErr:   ErrNegativeDifference,
			wantField: "other",
		},
		{
			name:      "短いバッファ",
			image:     func() []byte { return testImage().Bytes()[:0x400] },
			wantErr:   ErrOutOfBounds,
			wantField: "name",
		},
	}

	c := testCatalog(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decode(tt.image(), c, false)
			if result != nil {
				t.Error("result should be nil on error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			var ferr *FieldError
			if !errors.As(err, &ferr) {
				t.Fatalf("error should be *FieldError: %v", err)
			}
			if ferr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %q, want %q", ferr.Field, tt.wantField)
			}
		})
	}
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Descriptor
		derived []Derivation
		wantErr error
	}{
		{
			name:    "2バイトを超える",
			fields:  []Descriptor{Number("x", 0, 12, 5)},
			wantErr: ErrWidthOverflow,
		},
		{
			name:    "名前の重複",
			fields:  []Descriptor{Number("x", 0, 8, 0), Number("x", 1, 8, 0)},
			wantErr: ErrDuplicateField,
		},
		{
			name:    "派生フィールドの名前の重複",
			fields:  []Descriptor{Number("x", 0, 8, 0), Number("y", 1, 8, 0)},
			derived: []Derivation{Difference("x", "x", "y")},
			wantErr: ErrDuplicateField,
		},
		{
			name:    "未知の依存先",
			fields:  []Descriptor{Number("x", 0, 8, 0)},
			derived: []Derivation{AnyOf("z", "x", "y")},
			wantErr: ErrUnknownField,
		},
		{
			name:    "未知の種別",
			fields:  []Descriptor{{Name: "x", Width: 8, Kind: Kind(9)}},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.fields, tt.derived...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCatalog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMustCatalog_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCatalog should panic on an invalid catalog")
		}
	}()
	MustCatalog([]Descriptor{Number("x", 0, 17, 0)})
}

func TestCatalog_Copies(t *testing.T) {
	fields := []Descriptor{Text("name", FileNameSegments()...), Number("x", 0, 8, 0)}
	c := MustCatalog(fields, AnyOf("any", "x"))

	// 元のスライスを変更しても影響しない
	fields[1].Offset = 100
	fields[0].Segments[0].Offset = 0
	got := c.Fields()
	if got[1].Offset != 0 || got[0].Segments[0].Offset != 0x3D9 {
		t.Errorf("catalog was modified through the input slice: %+v", got)
	}

	got[0].Segments[0].Offset = 1
	if c.Fields()[0].Segments[0].Offset != 0x3D9 {
		t.Error("Fields() should return a deep copy")
	}

	d := c.Derivations()
	d[0].Sources[0] = "y"
	if c.Derivations()[0].Sources[0] != "x" {
		t.Error("Derivations() should return a copy")
	}
}

func TestDerivations_NonNumeric(t *testing.T) {
	c := MustCatalog(
		[]Descriptor{Flag("a", 0, 1, 0), Number("b", 1, 8, 0)},
		Difference("d", "b", "a"),
	)
	buf := []byte{0x01, 0x05}
	if _, err := Decode(buf, c, false); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Decode() error = %v, want ErrNotNumeric", err)
	}
}
