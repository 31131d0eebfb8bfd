package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

type AddOptions struct {
	Key    string
	Type   kvtree.ValueType
	Value  string
	Indent string
	IDs    kvtree.IDProvider
	Logger *slog.Logger
}

// AddResult is the record after Add. Replaced is set when the key existed.
type AddResult struct {
	Record   record.Record
	Value    any
	Replaced bool
}

// Add appends a root parameter to the record at path and writes the file
// back. It goes through the same steps as the visual editor: add a root,
// then set its key, type and value. An existing key keeps its position and
// takes the new value.
func Add(path string, opts AddOptions) (*AddResult, error) {
	if strings.TrimSpace(opts.Key) == "" {
		return nil, fmt.Errorf("key must not be blank")
	}
	if opts.Type == "" {
		opts.Type = kvtree.TypeString
	}
	if !opts.Type.Valid() {
		return nil, fmt.Errorf("unknown type %q", opts.Type)
	}
	if opts.IDs == nil {
		opts.IDs = kvtree.UUIDs()
	}

	format, err := recordfile.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	rec, err := recordfile.Read(path)
	if err != nil {
		return nil, err
	}

	edOpts := []editor.Option{editor.WithIDs(opts.IDs)}
	if opts.Logger != nil {
		edOpts = append(edOpts, editor.WithLogger(opts.Logger))
	}
	ed := editor.New(rec, nil, edOpts...)

	id := ed.AddRoot()
	ed.Update(id, kvtree.FieldKey, opts.Key)
	ed.Update(id, kvtree.FieldType, string(opts.Type))
	if !opts.Type.IsContainer() && opts.Type != kvtree.TypeNull {
		ed.Update(id, kvtree.FieldValue, opts.Value)
	}

	out := ed.Value()
	if err := recordfile.Write(path, out, format, opts.Indent); err != nil {
		return nil, err
	}
	v, _ := out.Get(opts.Key)
	return &AddResult{
		Record:   out,
		Value:    v,
		Replaced: rec.Has(opts.Key),
	}, nil
}
