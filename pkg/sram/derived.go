package sram

import "fmt"

// Derivation は復号済みのフィールドから計算されるフィールド
type Derivation struct {
	Name    string
	Sources []string // 依存するフィールド名
	compute func(values []Value) (Value, error)
}

// AnyOf は sources のいずれかが真であれば true となるフィールドを作成します
func AnyOf(name string, sources ...string) Derivation {
	return Derivation{
		Name:    name,
		Sources: append([]string(nil), sources...),
		compute: func(values []Value) (Value, error) {
			for _, v := range values {
				if v.Truthy() {
					return BoolValue(true), nil
				}
			}
			return BoolValue(false), nil
		},
	}
}

// CountNonZero は sources のうち0でない値の数を数えるフィールドを作成します
func CountNonZero(name string, sources ...string) Derivation {
	return Derivation{
		Name:    name,
		Sources: append([]string(nil), sources...),
		compute: func(values []Value) (Value, error) {
			var count uint32
			for _, v := range values {
				if v.Truthy() {
					count++
				}
			}
			return NumberValue(count), nil
		},
	}
}

// Difference は minuend - subtrahend のフィールドを作成します。
// 両方が Duration の場合は Duration、それ以外は Number になります。
// Fraction は分子を使って計算します。
func Difference(name, minuend, subtrahend string) Derivation {
	return Derivation{
		Name:    name,
		Sources: []string{minuend, subtrahend},
		compute: func(values []Value) (Value, error) {
			a, b := values[0], values[1]
			if !a.IsNumeric() || !b.IsNumeric() {
				return Value{}, fmt.Errorf("%w: %v - %v", ErrNotNumeric, a.Kind(), b.Kind())
			}
			if b.Number() > a.Number() {
				return Value{}, fmt.Errorf("%w: %d - %d", ErrNegativeDifference, a.Number(), b.Number())
			}
			diff := a.Number() - b.Number()
			if a.Kind() == KindDuration && b.Kind() == KindDuration {
				return DurationValue(diff), nil
			}
			return NumberValue(diff), nil
		},
	}
}

// apply は values から依存フィールドを集めて計算します
func (d Derivation) apply(values map[string]Value) (Value, error) {
	inputs := make([]Value, len(d.Sources))
	for i, name := range d.Sources {
		v, ok := values[name]
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		inputs[i] = v
	}
	return d.compute(inputs)
}
