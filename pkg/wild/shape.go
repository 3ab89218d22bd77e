package wild

import "reflect"

// shape is the structural category of an operand. Categories are mutually
// exclusive: a Set is never treated as a sequence even though it iterates,
// and a string is a scalar, not a sequence of bytes.
type shape int

const (
	shapeScalar shape = iota
	shapeMapping
	shapeSequence
	shapeSet
)

// shapeOf classifies a value. The Set check runs before the reflection kind
// switch so sets keep their own category.
func shapeOf(v any) shape {
	if _, ok := v.(Set); ok {
		return shapeSet
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		return shapeMapping
	case reflect.Slice, reflect.Array:
		return shapeSequence
	default:
		return shapeScalar
	}
}

// equalValues compares two values for plain equality, coercing across
// numeric Go types so that decoded JSON (float64) still equals literal Go
// ints. Composites compare deeply; a Set compares element-for-element in
// insertion order here, with order-insensitive comparison left to the set
// matcher.
func equalValues(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	an, aok := toFloat64(a)
	bn, bok := toFloat64(b)
	if aok && bok {
		return an == bn
	}
	return false
}

// toFloat64 attempts to convert a value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}

// mapLookup fetches the entry for a pattern key from a value map of any
// concrete type. Interface-wrapped keys are unwrapped first so a key read
// from map[any]any can index a map[string]any. A key whose type is not
// assignable to the map's key type counts as absent.
func mapLookup(m reflect.Value, key reflect.Value) (any, bool) {
	for key.Kind() == reflect.Interface {
		key = key.Elem()
	}
	keyType := m.Type().Key()
	if !key.IsValid() {
		// A nil key can only live in an interface-keyed map.
		if keyType.Kind() != reflect.Interface {
			return nil, false
		}
		key = reflect.Zero(keyType)
	} else if !key.Type().AssignableTo(keyType) {
		return nil, false
	}
	elem := m.MapIndex(key)
	if !elem.IsValid() {
		return nil, false
	}
	return elem.Interface(), true
}
