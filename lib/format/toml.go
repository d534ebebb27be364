// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bureau-foundation/seriall/lib/pure"
)

// tomlRootKey holds the node list; a TOML document must be a table.
const tomlRootKey = "pures"

func marshalTOML(document pure.Document, options MarshalOptions) ([]byte, error) {
	nodes := document.Tree()
	for index, node := range nodes {
		if node == nil {
			nodes[index] = map[string]any{}
		}
	}

	var buffer bytes.Buffer
	encoder := toml.NewEncoder(&buffer)
	if options.Indent > 0 {
		encoder.SetIndentSymbol(strings.Repeat(" ", options.Indent))
		encoder.SetIndentTables(true)
		encoder.SetArraysMultiline(true)
	}
	if err := encoder.Encode(map[string]any{tomlRootKey: nodes}); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func unmarshalTOML(data []byte) (pure.Document, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	value, present := root[tomlRootKey]
	if !present {
		return nil, fmt.Errorf("missing %q array", tomlRootKey)
	}
	nodes, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an array, got %T", tomlRootKey, value)
	}
	for index, node := range nodes {
		if table, isTable := node.(map[string]any); isTable && len(table) == 0 {
			nodes[index] = nil
		}
	}
	return pure.FromTree(nodes)
}
