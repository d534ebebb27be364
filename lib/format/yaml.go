// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/seriall/lib/pure"
)

const defaultYAMLIndent = 2

func marshalYAML(document pure.Document, options MarshalOptions) ([]byte, error) {
	indent := options.Indent
	if indent <= 0 {
		indent = defaultYAMLIndent
	}
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(indent)
	if err := encoder.Encode(document.Tree()); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func unmarshalYAML(data []byte) (pure.Document, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, errors.New("empty input")
	}
	return pure.FromTree(tree)
}
