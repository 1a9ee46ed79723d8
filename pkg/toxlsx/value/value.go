// Package value defines the dynamically typed input value converted to a sheet.
package value

import (
	"errors"
	"time"
)

// ErrTooDeep indicates the input nests deeper than the configured limit.
var ErrTooDeep = errors.New("value nested too deeply")

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 256

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindAbsent is a missing value (null, nothing).
	KindAbsent Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDuration
	KindByteSize
	KindRecord
	KindList
	// KindOther wraps a scalar-like Go value outside the known taxonomy.
	KindOther
)

var kindNames = [...]string{
	KindAbsent:   "absent",
	KindString:   "string",
	KindInt:      "int",
	KindFloat:    "float",
	KindBool:     "bool",
	KindDate:     "date",
	KindDuration: "duration",
	KindByteSize: "filesize",
	KindRecord:   "record",
	KindList:     "list",
	KindOther:    "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ByteSize is a count of bytes. FromAny maps it to KindByteSize.
type ByteSize int64

// Value is an immutable tagged union. The zero Value is Absent.
type Value struct {
	kind   Kind
	str    string
	num    int64
	float  float64
	flag   bool
	time   time.Time
	fields []Field
	items  []Value
	other  any
}

// Field is a named member of a record.
type Field struct {
	Name  string
	Value Value
}

// F is shorthand for constructing a Field.
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Absent returns the missing value.
func Absent() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Date returns a point in time.
func Date(t time.Time) Value { return Value{kind: KindDate, time: t} }

// Duration returns a duration value.
func Duration(d time.Duration) Value { return Value{kind: KindDuration, num: int64(d)} }

// Bytes returns a byte size value.
func Bytes(n ByteSize) Value { return Value{kind: KindByteSize, num: int64(n)} }

// Other wraps an arbitrary Go value that fits no other kind.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// Record returns a record holding fields in the given order. A repeated name
// replaces the value of its first occurrence and keeps that position.
func Record(fields ...Field) Value {
	out := make([]Field, 0, len(fields))
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := seen[f.Name]; ok {
			out[i].Value = f.Value
			continue
		}
		seen[f.Name] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindRecord, fields: out}
}

// List returns an ordered list.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the missing value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsRecord reports whether v is a record.
func (v Value) IsRecord() bool { return v.kind == KindRecord }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// Str returns the string payload.
func (v Value) Str() string { return v.str }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.num }

// Float returns the float payload.
func (v Value) Float() float64 { return v.float }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.flag }

// Time returns the date payload.
func (v Value) Time() time.Time { return v.time }

// Duration returns the duration payload.
func (v Value) Duration() time.Duration { return time.Duration(v.num) }

// ByteSize returns the byte size payload.
func (v Value) ByteSize() ByteSize { return ByteSize(v.num) }

// Any returns the payload of a KindOther value.
func (v Value) Any() any { return v.other }

// Fields returns the record fields in order. The slice must not be modified.
func (v Value) Fields() []Field { return v.fields }

// Items returns the list elements in order. The slice must not be modified.
func (v Value) Items() []Value { return v.items }

// Len returns the number of fields of a record or elements of a list.
func (v Value) Len() int {
	switch v.kind {
	case KindRecord:
		return len(v.fields)
	case KindList:
		return len(v.items)
	}
	return 0
}

// Get looks up a record field by name.
func (v Value) Get(name string) (Value, bool) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Names returns the record field names in order.
func (v Value) Names() []string {
	if v.kind != KindRecord {
		return nil
	}
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.Name
	}
	return names
}
