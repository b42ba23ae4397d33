// Package render は復号結果を JSON / YAML / テキスト形式で出力します
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"

	"github.com/shiroemons/go-sramr/internal/sramr/interfaces"
	"github.com/shiroemons/go-sramr/pkg/z3r"
)

// 出力形式
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ErrUnknownFormat は未対応の出力形式が指定された場合のエラー
var ErrUnknownFormat = errors.New("未対応の出力形式です")

// Formats は対応している出力形式の一覧を返します
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatText}
}

// New は format に対応するRendererを返します
func New(format string) (interfaces.Renderer, error) {
	switch format {
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	case FormatYAML:
		return YAML{Indent: 2}, nil
	case FormatText:
		return Text{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// JSON はJSON形式で出力します。キーは名前順になります
type JSON struct {
	Indent string
}

// Render は section の内容を書き込みます
func (j JSON) Render(w io.Writer, report *z3r.Report, section z3r.Section) error {
	m, err := report.Map(section)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(m)
}

// YAML はYAML形式で出力します。項目はカタログの順序を保ちます
type YAML struct {
	Indent int
}

// Render は section の内容を書き込みます
func (y YAML) Render(w io.Writer, report *z3r.Report, section z3r.Section) error {
	entries, err := report.Entries(section)
	if err != nil {
		return err
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	if section == z3r.SectionAll {
		var current *yaml.Node
		var currentSection z3r.Section
		for _, e := range entries {
			if current == nil || e.Section != currentSection {
				current = &yaml.Node{Kind: yaml.MappingNode}
				currentSection = e.Section
				root.Content = append(root.Content, scalarNode(string(e.Section)), current)
			}
			if err := appendEntry(current, e); err != nil {
				return err
			}
		}
	} else {
		for _, e := range entries {
			if err := appendEntry(root, e); err != nil {
				return err
			}
		}
	}

	enc := yaml.NewEncoder(w)
	if y.Indent > 0 {
		enc.SetIndent(y.Indent)
	}
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

func appendEntry(mapping *yaml.Node, e z3r.Entry) error {
	value := &yaml.Node{}
	if err := value.Encode(e.Value); err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	mapping.Content = append(mapping.Content, scalarNode(e.Name), value)
	return nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Text は "名前 : 値" の行で出力します。SectionAll の場合は区分ごとに見出しを付けます
type Text struct{}

// Render は section の内容を書き込みます
func (Text) Render(w io.Writer, report *z3r.Report, section z3r.Section) error {
	entries, err := report.Entries(section)
	if err != nil {
		return err
	}

	labelWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, DisplayWidth(e.Name))
	}

	var b strings.Builder
	var currentSection z3r.Section
	for _, e := range entries {
		if section == z3r.SectionAll && e.Section != currentSection {
			if currentSection != "" {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "[%s]\n", e.Section)
			currentSection = e.Section
		}
		b.WriteString(Pad(e.Name, labelWidth))
		b.WriteString(" : ")
		b.WriteString(e.Display)
		b.WriteByte('\n')
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// DisplayWidth は端末上の表示幅を返します（全角は2、それ以外は1）
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// Pad は s の右側を空白で埋めて表示幅 n にします
func Pad(s string, n int) string {
	if w := DisplayWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
