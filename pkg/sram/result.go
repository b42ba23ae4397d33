package sram

// Result は復号結果です。フィールド名の順序はカタログの定義順で、派生フィールドは最後に並びます。
type Result struct {
	names  []string
	values map[string]Value
}

func newResult(capacity int) *Result {
	return &Result{
		names:  make([]string, 0, capacity),
		values: make(map[string]Value, capacity),
	}
}

func (r *Result) set(name string, v Value) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Get は name の値を返します
func (r *Result) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names はフィールド名の一覧を返します
func (r *Result) Names() []string {
	return append([]string(nil), r.names...)
}

// Len はフィールド数を返します
func (r *Result) Len() int {
	return len(r.names)
}

// Strings はフィールド名から表示用文字列へのマップを返します
func (r *Result) Strings() map[string]string {
	m := make(map[string]string, len(r.names))
	for _, name := range r.names {
		m[name] = r.values[name].String()
	}
	return m
}

// Map はフィールド名から Value.Native の値へのマップを返します
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(r.names))
	for _, name := range r.names {
		m[name] = r.values[name].Native()
	}
	return m
}
