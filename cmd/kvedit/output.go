package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/kvtree"
)

var (
	keyColor     = color.New(color.FgCyan).SprintFunc()
	typeColor    = color.New(color.FgMagenta).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgYellow).SprintFunc()
	mutedColor   = color.New(color.Faint).SprintFunc()
	addedColor   = color.New(color.FgGreen).SprintFunc()
	removedColor = color.New(color.FgRed).SprintFunc()
	okColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	failColor    = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
)

// renderRows draws a tree listing, one node per line.
func renderRows(rows []kvtree.Row) string {
	var b strings.Builder
	for _, row := range rows {
		n := row.Node
		key := keyColor(n.Key)
		if n.Key == "" {
			key = mutedColor("(no key)")
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", strings.Repeat("  ", row.Depth), key, typeColor(string(n.Type)), renderScalar(n))
	}
	return b.String()
}

func renderScalar(n *kvtree.Node) string {
	switch n.Type {
	case kvtree.TypeObject:
		if n.HasChildren() {
			return mutedColor(fmt.Sprintf("{%d}", len(n.Children)))
		}
	case kvtree.TypeArray:
		if n.HasChildren() {
			return mutedColor(fmt.Sprintf("[%d]", len(n.Children)))
		}
	case kvtree.TypeString:
		return stringColor(strconv.Quote(kvtree.Stringify(n.Value)))
	case kvtree.TypeNumber, kvtree.TypeBoolean:
		return numberColor(kvtree.Stringify(n.Value))
	case kvtree.TypeNull:
		return mutedColor("null")
	}
	data, err := json.Marshal(n.Value)
	if err != nil {
		return mutedColor(kvtree.Stringify(n.Value))
	}
	return mutedColor(string(data))
}

// renderDiff colors the lines of a changes.Text diff.
func renderDiff(text string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+ "):
			b.WriteString(addedColor(line))
		case strings.HasPrefix(line, "- "):
			b.WriteString(removedColor(line))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

// renderChanges lists top-level changes with a marker per kind.
func renderChanges(list []changes.Change) string {
	var b strings.Builder
	for _, c := range list {
		switch c.Kind {
		case changes.Added:
			fmt.Fprintf(&b, "  %s %s\n", addedColor("+"), c.Key)
		case changes.Removed:
			fmt.Fprintf(&b, "  %s %s\n", removedColor("-"), c.Key)
		case changes.Modified:
			fmt.Fprintf(&b, "  %s %s\n", warnColor("~"), c.Key)
		case changes.Reordered:
			fmt.Fprintf(&b, "  %s\n", mutedColor("key order changed"))
		}
	}
	return b.String()
}
