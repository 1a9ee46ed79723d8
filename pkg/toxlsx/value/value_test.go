package value

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordReplacesRepeatedName(t *testing.T) {
	rec := Record(F("a", Int(1)), F("b", Int(2)), F("a", Int(3)))

	assert.Equal(t, []string{"a", "b"}, rec.Names())
	got, ok := rec.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), got.Int())
}

func TestZeroValueIsAbsent(t *testing.T) {
	var v Value
	assert.True(t, v.IsAbsent())
	assert.Equal(t, "absent", v.Kind().String())
	assert.Equal(t, 0, v.Len())
}

func TestDecodeJSONKeepsKeyOrder(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"zeta": 1, "alpha": 2.5, "mid": null, "t": true, "s": "x"}`), DecodeOptions{})
	require.NoError(t, err)

	require.Equal(t, KindRecord, v.Kind())
	assert.Equal(t, []string{"zeta", "alpha", "mid", "t", "s"}, v.Names())

	zeta, _ := v.Get("zeta")
	assert.Equal(t, KindInt, zeta.Kind())
	alpha, _ := v.Get("alpha")
	assert.Equal(t, KindFloat, alpha.Kind())
	assert.Equal(t, 2.5, alpha.Float())
	mid, _ := v.Get("mid")
	assert.True(t, mid.IsAbsent())
	flag, _ := v.Get("t")
	assert.True(t, flag.Bool())
}

func TestDecodeJSONListOfRecords(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`[{"name": "bob", "tags": []}, {"name": "amy"}]`), DecodeOptions{})
	require.NoError(t, err)

	require.True(t, v.IsList())
	require.Equal(t, 2, v.Len())
	tags, ok := v.Items()[0].Get("tags")
	require.True(t, ok)
	assert.True(t, tags.IsList())
	assert.Equal(t, 0, tags.Len())
}

func TestDecodeJSONParseDates(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`"2024-03-01T10:00:00Z"`), DecodeOptions{ParseDates: true})
	require.NoError(t, err)
	assert.Equal(t, KindDate, v.Kind())
	assert.Equal(t, 2024, v.Time().Year())

	v, err = DecodeJSON(strings.NewReader(`"2024-03-01T10:00:00Z"`), DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind())
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"truncated", `{"a": [1, 2`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.input), DecodeOptions{})
			assert.Error(t, err)
		})
	}
}

func TestDecodeJSONDepthLimit(t *testing.T) {
	input := strings.Repeat("[", 10) + strings.Repeat("]", 10)

	_, err := DecodeJSON(strings.NewReader(input), DecodeOptions{MaxDepth: 5})
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = DecodeJSON(strings.NewReader(input), DecodeOptions{MaxDepth: 20})
	assert.NoError(t, err)
}

func TestDecodeYAMLTags(t *testing.T) {
	input := `
name: build
took: !duration 2.5ms
raw: !duration 500
size: !filesize 1536
at: 2024-03-01T10:00:00Z
count: 3
ratio: 0.5
ok: false
missing: ~
`
	v, err := DecodeYAML(strings.NewReader(input), DecodeOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "took", "raw", "size", "at", "count", "ratio", "ok", "missing"}, v.Names())

	took, _ := v.Get("took")
	assert.Equal(t, KindDuration, took.Kind())
	assert.Equal(t, 2500*time.Microsecond, took.Duration())

	raw, _ := v.Get("raw")
	assert.Equal(t, 500*time.Nanosecond, raw.Duration())

	size, _ := v.Get("size")
	assert.Equal(t, KindByteSize, size.Kind())
	assert.Equal(t, ByteSize(1536), size.ByteSize())

	at, _ := v.Get("at")
	assert.Equal(t, KindDate, at.Kind())

	count, _ := v.Get("count")
	assert.Equal(t, KindInt, count.Kind())
	ratio, _ := v.Get("ratio")
	assert.Equal(t, KindFloat, ratio.Kind())
	ok, _ := v.Get("ok")
	assert.Equal(t, KindBool, ok.Kind())
	missing, _ := v.Get("missing")
	assert.True(t, missing.IsAbsent())
}

func TestDecodeYAMLAliases(t *testing.T) {
	input := `
base: &b
  host: local
copy: *b
`
	v, err := DecodeYAML(strings.NewReader(input), DecodeOptions{})
	require.NoError(t, err)

	cp, ok := v.Get("copy")
	require.True(t, ok)
	host, ok := cp.Get("host")
	require.True(t, ok)
	assert.Equal(t, "local", host.Str())
}

// nestedAnchors builds a document where each anchor lists the previous
// one ten times, so it expands to 10^levels scalars.
func nestedAnchors(levels int) string {
	var b strings.Builder
	b.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i < levels; i++ {
		prev := "*a" + strconv.Itoa(i-1)
		name := "a" + strconv.Itoa(i)
		b.WriteString(name + ": &" + name + " [")
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(prev)
		}
		b.WriteString("]\n")
	}
	return b.String()
}

func TestDecodeYAMLAliasExpansionLimit(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader(nestedAnchors(9)), DecodeOptions{})
	assert.ErrorIs(t, err, ErrTooLarge)

	v, err := DecodeYAML(strings.NewReader(nestedAnchors(3)), DecodeOptions{})
	require.NoError(t, err)
	a2, ok := v.Get("a2")
	require.True(t, ok)
	assert.Equal(t, 10, a2.Len())
}

func TestDecodeYAMLMaxNodes(t *testing.T) {
	input := "a: &x [1, 2]\nb: *x\n"

	// Root mapping, two lists, four scalars.
	_, err := DecodeYAML(strings.NewReader(input), DecodeOptions{MaxNodes: 7})
	require.NoError(t, err)

	_, err = DecodeYAML(strings.NewReader(input), DecodeOptions{MaxNodes: 6})
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	v, err := DecodeYAML(strings.NewReader(""), DecodeOptions{})
	require.NoError(t, err)
	assert.True(t, v.IsAbsent())
}

func TestDecodeYAMLInvalidDuration(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("d: !duration soon\n"), DecodeOptions{})
	assert.Error(t, err)
}

type sample struct {
	Name    string        `json:"name"`
	Skipped string        `json:"-"`
	Size    ByteSize      `json:"size"`
	Took    time.Duration `json:"took"`
	Rows    []row         `json:"rows"`
	hidden  int
}

type row struct {
	ID int
}

func TestFromAnyStruct(t *testing.T) {
	v, err := FromAny(sample{
		Name: "job",
		Size: 2048,
		Took: time.Second,
		Rows: []row{{ID: 1}, {ID: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "size", "took", "rows"}, v.Names())
	size, _ := v.Get("size")
	assert.Equal(t, KindByteSize, size.Kind())
	took, _ := v.Get("took")
	assert.Equal(t, KindDuration, took.Kind())
	rows, _ := v.Get("rows")
	require.Equal(t, 2, rows.Len())
	assert.Equal(t, []string{"ID"}, rows.Items()[0].Names())
}

func TestFromAnyMapSortsKeys(t *testing.T) {
	v, err := FromAny(map[string]any{"b": 1, "a": "x", "c": nil})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v.Names())

	c, _ := v.Get("c")
	assert.True(t, c.IsAbsent())
}

func TestFromAnyFallback(t *testing.T) {
	ch := make(chan int)
	v, err := FromAny(ch)
	require.NoError(t, err)
	assert.Equal(t, KindOther, v.Kind())

	v, err = FromAny(map[int]string{1: "a"})
	require.NoError(t, err)
	assert.Equal(t, KindOther, v.Kind())
}

func TestFromAnyPointerCycle(t *testing.T) {
	type node struct {
		Next *node
	}
	n := &node{}
	n.Next = n

	_, err := FromAny(n)
	assert.ErrorIs(t, err, ErrTooDeep)
}
