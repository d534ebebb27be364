// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/seriall/lib/pure"
)

func marshalJSON(document pure.Document, options MarshalOptions) ([]byte, error) {
	if options.Indent <= 0 {
		return json.Marshal(document)
	}
	data, err := json.MarshalIndent(document, "", strings.Repeat(" ", options.Indent))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func unmarshalJSON(data []byte) (pure.Document, error) {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil, errors.New("empty input")
	}
	var document pure.Document
	if err := json.Unmarshal(stripped, &document); err != nil {
		return nil, err
	}
	return document, nil
}
