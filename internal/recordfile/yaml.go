package recordfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ruminaider/kvedit/internal/record"
	"go.yaml.in/yaml/v3"
)

// Use yaml.Node throughout so mapping order survives both directions.
func decodeYAML(data []byte) (record.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return record.Record{}, nil
	}
	d := &yamlDecoder{active: map[*yaml.Node]bool{}}
	v, err := d.value(doc.Content[0])
	if err != nil {
		return nil, err
	}
	rec, ok := v.(record.Record)
	if !ok {
		return nil, record.ErrNotObject
	}
	return rec, nil
}

// maxAliasExpansions bounds how many times aliases may be followed while
// decoding one document.
const maxAliasExpansions = 10000

// yamlDecoder follows aliases on a raw yaml.Node tree, which yaml.Unmarshal
// leaves unchecked.
type yamlDecoder struct {
	active     map[*yaml.Node]bool
	expansions int
}

func (d *yamlDecoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.AliasNode:
		return d.alias(n)
	case yaml.MappingNode:
		return d.mapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := d.value(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func (d *yamlDecoder) alias(n *yaml.Node) (any, error) {
	if n.Alias == nil {
		return nil, fmt.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
	}
	if d.active[n.Alias] {
		return nil, fmt.Errorf("line %d: anchor %q references itself", n.Line, n.Value)
	}
	d.expansions++
	if d.expansions > maxAliasExpansions {
		return nil, fmt.Errorf("line %d: document expands more than %d aliases", n.Line, maxAliasExpansions)
	}
	d.active[n.Alias] = true
	defer delete(d.active, n.Alias)
	return d.value(n.Alias)
}

func (d *yamlDecoder) mapping(n *yaml.Node) (record.Record, error) {
	rec := record.Record{}
	for i := 0; i < len(n.Content)-1; i += 2 {
		keyNode := n.Content[i]
		valNode := n.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		// Merge keys (<<) pull in entries the mapping doesn't set itself.
		if keyNode.ShortTag() == "!!merge" {
			merged, err := d.merge(valNode)
			if err != nil {
				return nil, err
			}
			for _, e := range merged {
				if !rec.Has(e.Key) {
					rec = rec.Set(e.Key, e.Value)
				}
			}
			continue
		}

		v, err := d.value(valNode)
		if err != nil {
			return nil, err
		}
		rec = rec.Set(keyNode.Value, v)
	}
	return rec, nil
}

func (d *yamlDecoder) merge(n *yaml.Node) (record.Record, error) {
	if n.Kind == yaml.SequenceNode {
		out := record.Record{}
		for _, item := range n.Content {
			m, err := d.merge(item)
			if err != nil {
				return nil, err
			}
			for _, e := range m {
				if !out.Has(e.Key) {
					out = out.Set(e.Key, e.Value)
				}
			}
		}
		return out, nil
	}
	v, err := d.value(n)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(record.Record)
	if !ok {
		return nil, fmt.Errorf("line %d: merge value must be a mapping", n.Line)
	}
	return rec, nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool", "!!int", "!!float":
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return record.Normalize(v), nil
	default:
		// Strings, timestamps and anything custom-tagged keep their text.
		return n.Value, nil
	}
}

func encodeYAML(rec record.Record, indent int) ([]byte, error) {
	if indent < 2 {
		indent = 2
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode}
	root, err := yamlNode(rec)
	if err != nil {
		return nil, err
	}
	doc.Content = append(doc.Content, root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch tv := record.Normalize(v).(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}, nil
	case bool:
		s := "false"
		if tv {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: s}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: yamlNumber(tv)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: tv}, nil
	case record.Record:
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range tv {
			val, err := yamlNode(e.Value)
			if err != nil {
				return nil, err
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
				val,
			)
		}
		return m, nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range tv {
			val, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, val)
		}
		return seq, nil
	default:
		var n yaml.Node
		if err := n.Encode(tv); err != nil {
			return nil, fmt.Errorf("encoding %T as YAML: %w", tv, err)
		}
		return &n, nil
	}
}

func yamlNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	b, _ := json.Marshal(f)
	return string(b)
}
