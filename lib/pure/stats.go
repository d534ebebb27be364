// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"fmt"
	"strconv"
	"strings"
)

// Stats summarizes a document.
type Stats struct {
	Nodes      int            `json:"nodes"`
	Tags       map[string]int `json:"tags"`
	Properties int            `json:"properties"`
	// Values and Adapters count references by palette key and adapter
	// name.
	Values   map[string]int `json:"values,omitempty"`
	Adapters map[string]int `json:"adapters,omitempty"`
}

// Stats counts nodes per tag and references per palette key and
// adapter name.
func (d Document) Stats() Stats {
	stats := Stats{
		Nodes:    len(d),
		Tags:     make(map[string]int),
		Values:   make(map[string]int),
		Adapters: make(map[string]int),
	}
	for _, node := range d {
		if node == nil {
			continue
		}
		stats.Tags[node.Tag().String()]++
		switch typed := node.(type) {
		case Object:
			stats.Properties += len(typed.Properties)
		case RefValue:
			stats.Values[typed.Key]++
		case RefAdapter:
			stats.Adapters[typed.Name]++
		}
	}
	return stats
}

// Summary renders a node on one line for listings.
func Summary(node Node) string {
	switch typed := node.(type) {
	case nil:
		return "<missing>"
	case Raw:
		switch value := typed.Value.(type) {
		case nil:
			return "null"
		case string:
			return strconv.Quote(value)
		default:
			return fmt.Sprint(value)
		}
	case Array:
		return "[" + joinIndices(typed) + "]"
	case Symbol:
		return "Symbol.for(" + strconv.Quote(typed.Key) + ")"
	case BigInt:
		return typed.Value + "n"
	case Special:
		return typed.Value.String()
	case Prototype:
		return fmt.Sprintf("prototype of #%d", typed.Class)
	case Object:
		var builder strings.Builder
		fmt.Fprintf(&builder, "instance of #%d {", typed.Class)
		for position, property := range typed.Properties {
			if position > 0 {
				builder.WriteString(", ")
			}
			fmt.Fprintf(&builder, "%s: #%d", property.Name, property.Value)
			if property.Flags != (Flags{}) {
				builder.WriteString(" " + flagSummary(property.Flags))
			}
		}
		builder.WriteString("}")
		return builder.String()
	case RefValue:
		return "palette " + strconv.Quote(typed.Key)
	case RefAdapter:
		return fmt.Sprintf("adapter %s(#%d)", typed.Name, typed.Value)
	}
	return fmt.Sprintf("%T", node)
}

func joinIndices(indices []Index) string {
	parts := make([]string, len(indices))
	for position, index := range indices {
		parts[position] = "#" + strconv.Itoa(int(index))
	}
	return strings.Join(parts, ", ")
}

func flagSummary(flags Flags) string {
	var parts []string
	if flags.NotWritable {
		parts = append(parts, "readonly")
	}
	if flags.NotEnumerable {
		parts = append(parts, "hidden")
	}
	if flags.NotConfigurable {
		parts = append(parts, "fixed")
	}
	return "(" + strings.Join(parts, " ") + ")"
}
