// Package z3r は A Link to the Past Randomizer のセーブデータ用のフィールドカタログと
// 表示名の対応表を提供し、sram パッケージを使ってメタ情報・統計・装備を復号します。
//
// 基本的な使い方:
//
//	report, err := z3r.Parse(buf, true)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Meta.FileName, report.Meta.Permalink)
//	v, _ := report.Stats.Get("collection rate")
package z3r

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shiroemons/go-sramr/pkg/sram"
)

// Section は出力の区分
type Section string

const (
	SectionAll       Section = "all"
	SectionMeta      Section = "meta"
	SectionStats     Section = "stats"
	SectionEquipment Section = "equipment"
)

// Sections は指定可能な区分の一覧を返します
func Sections() []Section {
	return []Section{SectionAll, SectionMeta, SectionStats, SectionEquipment}
}

const (
	hashIDOffset  = 0x2003
	hashIDLength  = 10
	permalinkBase = "https://alttpr.com/h/"
)

var (
	// ErrInvalidHashID はハッシュIDがUTF-8として不正な場合のエラー
	ErrInvalidHashID = errors.New("invalid hash id")

	// ErrUnknownSection は未知の区分が指定された場合のエラー
	ErrUnknownSection = errors.New("unknown section")
)

// MetaCatalog はファイル名のカタログ
var MetaCatalog = sram.MustCatalog([]sram.Descriptor{
	sram.Text("filename", sram.FileNameSegments()...),
})

// Meta はセーブデータのメタ情報
type Meta struct {
	FileName  string
	HashID    string // ROM名が "VT" でない場合は空
	Permalink string // HashID が空の場合は空
}

// Report は1つのセーブデータの復号結果
type Report struct {
	Meta      Meta
	Stats     *sram.Result
	Equipment *sram.Result
}

// Entry は表示用の1項目
type Entry struct {
	Section Section
	Name    string
	Display string // 表示用文字列（値がない場合は "none"）
	Value   any    // JSON/YAML 用の値（値がない場合は nil）
}

// Parse は buf を検証し、メタ情報・統計・装備を復号します。
// validate が false の場合は検証を行わずに復号します。
func Parse(buf []byte, validate bool) (*Report, error) {
	if validate {
		if err := sram.Validate(buf); err != nil {
			return nil, err
		}
	}

	meta, err := sram.Decode(buf, MetaCatalog, false)
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}
	fileName, _ := meta.Get("filename")

	hashID, ok, err := HashID(buf)
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}

	stats, err := sram.Decode(buf, StatsCatalog, false)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	equipment, err := sram.Decode(buf, EquipmentCatalog, false)
	if err != nil {
		return nil, fmt.Errorf("equipment: %w", err)
	}

	report := &Report{
		Meta:      Meta{FileName: fileName.Text()},
		Stats:     stats,
		Equipment: equipment,
	}
	if ok {
		report.Meta.HashID = hashID
		report.Meta.Permalink = Permalink(hashID)
	}
	return report, nil
}

// HashID はROM名が "VT" の場合にROM名に続く10文字のハッシュIDを返します
func HashID(buf []byte) (string, bool, error) {
	r := sram.NewReader(buf)
	name, err := r.Bytes(sram.ROMNameOffset, sram.ROMNameLength)
	if err != nil {
		return "", false, err
	}
	if string(name) != "VT" {
		return "", false, nil
	}

	id, err := r.Bytes(hashIDOffset, hashIDLength)
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(id) {
		return "", false, fmt.Errorf("%w: % X", ErrInvalidHashID, id)
	}
	return string(id), true, nil
}

// Permalink はハッシュIDからシードのURLを返します
func Permalink(hashID string) string {
	return permalinkBase + hashID
}

// Entries は section の項目を順に返します
func (r *Report) Entries(section Section) ([]Entry, error) {
	switch section {
	case SectionAll:
		entries := r.metaEntries()
		entries = append(entries, resultEntries(SectionStats, r.Stats)...)
		entries = append(entries, r.equipmentEntries()...)
		return entries, nil
	case SectionMeta:
		return r.metaEntries(), nil
	case SectionStats:
		return resultEntries(SectionStats, r.Stats), nil
	case SectionEquipment:
		return r.equipmentEntries(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// Map は section の内容をネストしたマップで返します。
// SectionAll の場合は "meta", "stats", "equipment" をキーとするマップになります。
func (r *Report) Map(section Section) (map[string]any, error) {
	if section == SectionAll {
		m := make(map[string]any, 3)
		for _, s := range []Section{SectionMeta, SectionStats, SectionEquipment} {
			sub, err := r.Map(s)
			if err != nil {
				return nil, err
			}
			m[string(s)] = sub
		}
		return m, nil
	}

	entries, err := r.Entries(section)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Value
	}
	return m, nil
}

func (r *Report) metaEntries() []Entry {
	entries := []Entry{{Section: SectionMeta, Name: "filename", Display: r.Meta.FileName, Value: r.Meta.FileName}}
	entries = append(entries, optionalEntry("hash id", r.Meta.HashID), optionalEntry("permalink", r.Meta.Permalink))
	return entries
}

func (r *Report) equipmentEntries() []Entry {
	entries := resultEntries(SectionEquipment, r.Equipment)
	for i, e := range entries {
		labeler, ok := EquipmentLabel(e.Name)
		if !ok {
			continue
		}
		v, _ := r.Equipment.Get(e.Name)
		if label, ok := labeler(v.Number()); ok {
			entries[i].Display = label
			entries[i].Value = label
		} else {
			entries[i].Display = "none"
			entries[i].Value = nil
		}
	}
	return entries
}

func optionalEntry(name, value string) Entry {
	if value == "" {
		return Entry{Section: SectionMeta, Name: name, Display: "none"}
	}
	return Entry{Section: SectionMeta, Name: name, Display: value, Value: value}
}

func resultEntries(section Section, result *sram.Result) []Entry {
	if result == nil {
		return nil
	}
	names := result.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		v, _ := result.Get(name)
		entries = append(entries, Entry{Section: section, Name: name, Display: v.String(), Value: v.Native()})
	}
	return entries
}
