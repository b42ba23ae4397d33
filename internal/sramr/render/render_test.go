package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-sramr/internal/testutil"
	"github.com/shiroemons/go-sramr/pkg/sram"
	"github.com/shiroemons/go-sramr/pkg/z3r"
)

func sampleReport(t *testing.T) *z3r.Report {
	t.Helper()
	s := testutil.NewSRAM().
		SetHashID("Ab3dE6gH9j").
		SetFileName(181, 178, 183, 180, 204, 204, 204, 204, 204, 204, 204, 204).
		SetUint8(0x423, 200).
		SetUint8(0x442, 150).
		SetUint32(0x43E, sram.FramesPerHour).
		SetUint8(0x359, 2).
		FixChecksum()

	report, err := z3r.Parse(s.Bytes(), true)
	require.NoError(t, err)
	return report
}

func TestNew(t *testing.T) {
	for _, format := range Formats() {
		r, err := New(format)
		require.NoError(t, err, format)
		require.NotNil(t, r)
	}

	_, err := New("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSON_Render(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, JSON{Indent: "  "}.Render(&buf, report, z3r.SectionAll))

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "LINK        ", got["meta"]["filename"])
	require.Equal(t, "https://alttpr.com/h/Ab3dE6gH9j", got["meta"]["permalink"])
	require.Equal(t, "200/216", got["stats"]["collection rate"])
	require.Equal(t, float64(150), got["stats"]["chest locations"])
	require.Equal(t, "01:00:00.00", got["stats"]["total time"])
	require.Equal(t, "Master Sword", got["equipment"]["sword"])
	require.Equal(t, false, got["equipment"]["fire rod"])
}

func TestJSON_RenderSection(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, JSON{}.Render(&buf, report, z3r.SectionMeta))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Ab3dE6gH9j", got["hash id"])

	require.ErrorIs(t, JSON{}.Render(&buf, report, "items"), z3r.ErrUnknownSection)
}

func TestYAML_Render(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, YAML{Indent: 2}.Render(&buf, report, z3r.SectionAll))
	out := buf.String()

	// 区分の順序が保たれる
	meta := strings.Index(out, "meta:")
	stats := strings.Index(out, "stats:")
	equipment := strings.Index(out, "equipment:")
	require.True(t, meta >= 0 && meta < stats && stats < equipment, out)

	var got map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "200/216", got["stats"]["collection rate"])
	require.Equal(t, 150, got["stats"]["chest locations"])
	require.Nil(t, got["equipment"]["gloves"])
	require.Contains(t, got["equipment"], "gloves")
}

func TestYAML_RenderSection(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, YAML{}.Render(&buf, report, z3r.SectionStats))

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &node))
	mapping := node.Content[0]
	// カタログの順序で回収率、宝箱の数と続く
	require.Equal(t, "collection rate", mapping.Content[0].Value)
	require.Equal(t, "chest locations", mapping.Content[2].Value)
}

func TestText_Render(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(&buf, report, z3r.SectionMeta))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"filename  : LINK        ",
		"hash id   : Ab3dE6gH9j",
		"permalink : https://alttpr.com/h/Ab3dE6gH9j",
	}, lines)
}

func TestText_RenderAll(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(&buf, report, z3r.SectionAll))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "[meta]\n"))
	require.Contains(t, out, "\n\n[stats]\n")
	require.Contains(t, out, "\n\n[equipment]\n")
	require.Contains(t, out, " : Master Sword\n")
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ASCII", in: "bonks", want: 5},
		{name: "カタカナ", in: "リンク", want: 6},
		{name: "半角カナ", in: "ｱｲｳ", want: 3},
		{name: "混在", in: "a「ア」", want: 7},
		{name: "空文字列", in: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DisplayWidth(tt.in))
		})
	}

	require.Equal(t, "リンク  |", Pad("リンク", 8)+"|")
	require.Equal(t, "toolong", Pad("toolong", 3))
}
