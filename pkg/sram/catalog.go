package sram

import "fmt"

// Catalog はフィールドと派生フィールドの不変な一覧です。
// 作成後は変更されないため、複数の復号処理から同時に参照できます。
type Catalog struct {
	fields  []Descriptor
	derived []Derivation
}

// NewCatalog は新しい Catalog を作成します。
// 各 Descriptor の制約、名前の重複、派生フィールドの依存関係を確認します。
// 派生フィールドは先に定義されたフィールドまたは派生フィールドに依存できます。
func NewCatalog(fields []Descriptor, derived ...Derivation) (*Catalog, error) {
	names := make(map[string]struct{}, len(fields)+len(derived))

	for _, f := range fields {
		if err := f.Check(); err != nil {
			return nil, &FieldError{Field: f.Name, Offset: f.Offset, Err: err}
		}
		if _, dup := names[f.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		names[f.Name] = struct{}{}
	}

	for _, d := range derived {
		if d.compute == nil {
			return nil, fmt.Errorf("derived field %q has no computation", d.Name)
		}
		for _, src := range d.Sources {
			if _, ok := names[src]; !ok {
				return nil, &FieldError{Field: d.Name, Offset: -1, Err: fmt.Errorf("%w: %q", ErrUnknownField, src)}
			}
		}
		if _, dup := names[d.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, d.Name)
		}
		names[d.Name] = struct{}{}
	}

	c := &Catalog{
		fields:  make([]Descriptor, len(fields)),
		derived: make([]Derivation, len(derived)),
	}
	for i, f := range fields {
		f.Segments = append([]Segment(nil), f.Segments...)
		c.fields[i] = f
	}
	copy(c.derived, derived)
	return c, nil
}

// MustCatalog は NewCatalog を呼び出し、エラーの場合は panic します。
// パッケージ変数の初期化で使用します。
func MustCatalog(fields []Descriptor, derived ...Derivation) *Catalog {
	c, err := NewCatalog(fields, derived...)
	if err != nil {
		panic(err)
	}
	return c
}

// Fields はフィールドの一覧のコピーを返します
func (c *Catalog) Fields() []Descriptor {
	fields := make([]Descriptor, len(c.fields))
	for i, f := range c.fields {
		f.Segments = append([]Segment(nil), f.Segments...)
		fields[i] = f
	}
	return fields
}

// Derivations は派生フィールドの一覧のコピーを返します
func (c *Catalog) Derivations() []Derivation {
	derived := make([]Derivation, len(c.derived))
	for i, d := range c.derived {
		d.Sources = append([]string(nil), d.Sources...)
		derived[i] = d
	}
	return derived
}

// Len は Result に含まれるフィールド数を返します
func (c *Catalog) Len() int {
	n := len(c.derived)
	for _, f := range c.fields {
		if !f.Hidden {
			n++
		}
	}
	return n
}
