package sram

// Decoder はカタログに従ってSRAMイメージを復号します
type Decoder struct {
	catalog *Catalog
}

// NewDecoder は新しい Decoder を作成します
func NewDecoder(catalog *Catalog) *Decoder {
	return &Decoder{catalog: catalog}
}

// Catalog は Decoder が使用するカタログを返します
func (d *Decoder) Catalog() *Catalog {
	return d.catalog
}

// Decode は buf を復号します。
// validate が true の場合は先に Validate を実行します。検証済みのバッファや、
// 破損している可能性のあるデータを可能な範囲で読みたい場合は false を指定します。
// いずれかのフィールドで失敗した場合は結果を返さず、*FieldError を返します。
func (d *Decoder) Decode(buf []byte, validate bool) (*Result, error) {
	if validate {
		if err := Validate(buf); err != nil {
			return nil, err
		}
	}

	r := NewReader(buf)
	values := make(map[string]Value, len(d.catalog.fields)+len(d.catalog.derived))
	result := newResult(d.catalog.Len())

	for _, f := range d.catalog.fields {
		v, err := f.read(r)
		if err != nil {
			return nil, &FieldError{Field: f.Name, Offset: f.Offset, Err: err}
		}
		values[f.Name] = v
		if !f.Hidden {
			result.set(f.Name, v)
		}
	}

	// 派生フィールドは全フィールドの復号後に計算する
	for _, dv := range d.catalog.derived {
		v, err := dv.apply(values)
		if err != nil {
			return nil, &FieldError{Field: dv.Name, Offset: -1, Err: err}
		}
		values[dv.Name] = v
		result.set(dv.Name, v)
	}

	return result, nil
}

// Decode は catalog に従って buf を復号します
func Decode(buf []byte, catalog *Catalog, validate bool) (*Result, error) {
	return NewDecoder(catalog).Decode(buf, validate)
}
