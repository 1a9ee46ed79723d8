package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeOptions configures the decoders.
type DecodeOptions struct {
	// MaxDepth bounds nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxNodes bounds the number of values a YAML document may expand to
	// once aliases are resolved. Zero means DefaultMaxNodes.
	MaxNodes int
	// ParseDates turns RFC 3339 strings in JSON input into dates.
	ParseDates bool
}

// DefaultMaxNodes is the YAML expansion limit used when none is configured.
const DefaultMaxNodes = 1 << 20

// ErrTooLarge indicates a YAML document expands past the configured node limit.
var ErrTooLarge = errors.New("document expands to too many values")

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (o DecodeOptions) maxNodes() int {
	if o.MaxNodes > 0 {
		return o.MaxNodes
	}
	return DefaultMaxNodes
}

// DecodeJSON reads exactly one JSON value from r, keeping object key order.
func DecodeJSON(r io.Reader, opts DecodeOptions) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeJSON(dec, opts, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return Value{}, errors.New("json: unexpected data after top-level value")
		}
		return Value{}, fmt.Errorf("json: %w", err)
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder, opts DecodeOptions, depth int) (Value, error) {
	if depth > opts.maxDepth() {
		return Value{}, ErrTooDeep
	}
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, fmt.Errorf("json: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, fmt.Errorf("json: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("json: unexpected object key %v", keyTok)
				}
				child, err := decodeJSON(dec, opts, depth+1)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, F(key, child))
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("json: %w", err)
			}
			return Record(fields...), nil
		case '[':
			items := []Value{}
			for dec.More() {
				child, err := decodeJSON(dec, opts, depth+1)
				if err != nil {
					return Value{}, err
				}
				items = append(items, child)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, fmt.Errorf("json: %w", err)
			}
			return List(items...), nil
		}
		return Value{}, fmt.Errorf("json: unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("json: invalid number %q: %w", t.String(), err)
		}
		return Float(f), nil
	case string:
		if opts.ParseDates {
			if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return Date(ts), nil
			}
		}
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Absent(), nil
	}
	return Value{}, fmt.Errorf("json: unexpected token %v", tok)
}

// DecodeYAML reads the first YAML document from r. Mapping order is kept,
// aliases are resolved, and the custom tags !duration and !filesize produce
// durations and byte sizes. An empty stream decodes to Absent.
func DecodeYAML(r io.Reader, opts DecodeOptions) (Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Absent(), nil
		}
		return Value{}, fmt.Errorf("yaml: %w", err)
	}
	d := &nodeDecoder{maxDepth: opts.maxDepth(), budget: opts.maxNodes()}
	return d.decode(&doc, 0)
}

// nodeDecoder walks a yaml.v3 node tree. Every alias is expanded in place, so
// budget counts the values produced rather than the nodes parsed.
type nodeDecoder struct {
	maxDepth int
	budget   int
}

func (d *nodeDecoder) decode(n *yaml.Node, depth int) (Value, error) {
	if depth > d.maxDepth {
		return Value{}, ErrTooDeep
	}
	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		if d.budget--; d.budget < 0 {
			return Value{}, ErrTooLarge
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Absent(), nil
		}
		return d.decode(n.Content[0], depth)
	case yaml.AliasNode:
		return d.decode(n.Alias, depth+1)
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := d.decode(n.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, F(n.Content[i].Value, child))
		}
		return Record(fields...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := d.decode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return List(items...), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return Value{}, fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Absent(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range; keep the magnitude as a float.
			var f float64
			if ferr := n.Decode(&f); ferr != nil {
				return Value{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
			}
			return Float(f), nil
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return Float(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return Value{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return Date(t), nil
	case "!duration":
		d, err := parseDuration(n.Value)
		if err != nil {
			return Value{}, fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return Duration(d), nil
	case "!filesize":
		b, err := strconv.ParseInt(strings.TrimSpace(n.Value), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("yaml: line %d: invalid filesize %q", n.Line, n.Value)
		}
		return Bytes(ByteSize(b)), nil
	}
	return String(n.Value), nil
}

// parseDuration accepts Go duration syntax or a bare nanosecond count.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ns, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ns), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
