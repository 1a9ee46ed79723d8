package value

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	byteSizeType = reflect.TypeOf(ByteSize(0))
)

// FromAny converts a Go value into a Value. Maps become records with keys in
// sorted order, structs become records of their exported fields in
// declaration order (honoring json tag names and "-"), slices and arrays
// become lists. Anything else scalar-like is wrapped with Other.
func FromAny(v any) (Value, error) {
	if val, ok := v.(Value); ok {
		return val, nil
	}
	return fromReflect(reflect.ValueOf(v), DefaultMaxDepth, 0)
}

func fromReflect(rv reflect.Value, maxDepth, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrTooDeep
	}
	if !rv.IsValid() {
		return Absent(), nil
	}

	switch rv.Type() {
	case timeType:
		return Date(rv.Interface().(time.Time)), nil
	case durationType:
		return Duration(time.Duration(rv.Int())), nil
	case byteSizeType:
		return Bytes(ByteSize(rv.Int())), nil
	}
	if n, ok := rv.Interface().(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
		if f, err := n.Float64(); err == nil {
			return Float(f), nil
		}
		return String(n.String()), nil
	}
	if val, ok := rv.Interface().(Value); ok {
		return val, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Absent(), nil
		}
		return fromReflect(rv.Elem(), maxDepth, depth+1)
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Absent(), nil
		}
		fallthrough
	case reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := fromReflect(rv.Index(i), maxDepth, depth+1)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return List(items...), nil
	case reflect.Map:
		if rv.IsNil() {
			return Absent(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return Other(rv.Interface()), nil
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			child, err := fromReflect(rv.MapIndex(k), maxDepth, depth+1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, F(k.String(), child))
		}
		return Record(fields...), nil
	case reflect.Struct:
		return fromStruct(rv, maxDepth, depth)
	}
	return Other(rv.Interface()), nil
}

func fromStruct(rv reflect.Value, maxDepth, depth int) (Value, error) {
	t := rv.Type()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		child, err := fromReflect(rv.Field(i), maxDepth, depth+1)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, F(name, child))
	}
	return Record(fields...), nil
}
