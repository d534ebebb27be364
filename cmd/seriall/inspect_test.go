// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/pure"
)

func TestInspectDocument(t *testing.T) {
	document, err := format.Unmarshal([]byte(plainObject), format.JSON)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	result := inspectDocument(document, format.JSON)
	if len(result.Nodes) != 7 {
		t.Fatalf("%d rows, want 7", len(result.Nodes))
	}
	if result.Nodes[0].Tag != "object" || result.Nodes[0].Summary != "instance of #1 {a: #2, b: #3, c: #4}" {
		t.Errorf("root row = %+v", result.Nodes[0])
	}
	if result.Nodes[1].Summary != `palette "Object"` {
		t.Errorf("class row = %+v", result.Nodes[1])
	}
	if result.Stats.Tags["raw"] != 4 || result.Stats.Properties != 3 || result.Stats.Values["Object"] != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.Problem != "" {
		t.Errorf("Problem = %q for a valid document", result.Problem)
	}

	var buffer bytes.Buffer
	if err := writeInspection(&buffer, result, painter{}); err != nil {
		t.Fatalf("writeInspection: %v", err)
	}
	output := buffer.String()
	for _, want := range []string{
		"INDEX  TAG        SUMMARY",
		"#0     object     instance of #1 {a: #2, b: #3, c: #4}",
		"#3     raw        \"x\"",
		"7 nodes, 3 properties (json)",
		"palette keys: Object (1)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n\nFull output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("unstyled output contains escape sequences")
	}
}

func TestInspectDocument_ReportsProblem(t *testing.T) {
	document := pure.Document{pure.Array{0, 9}}
	result := inspectDocument(document, format.YAML)
	if result.Problem == "" {
		t.Fatal("dangling index not reported")
	}

	var buffer bytes.Buffer
	if err := writeInspection(&buffer, result, painter{}); err != nil {
		t.Fatalf("writeInspection: %v", err)
	}
	if !strings.Contains(buffer.String(), "invalid: ") {
		t.Errorf("output does not flag the problem:\n%s", buffer.String())
	}
}

func TestInspectResult_JSON(t *testing.T) {
	document := pure.Document{pure.RefAdapter{Name: "Date", Value: 1}, pure.Raw{Value: 0.0}}
	encoded, err := json.Marshal(inspectDocument(document, format.CBOR))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Format string `json:"format"`
		Nodes  []struct {
			Tag string `json:"tag"`
		} `json:"nodes"`
		Stats struct {
			Adapters map[string]int `json:"adapters"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Format != "cbor" || len(decoded.Nodes) != 2 || decoded.Nodes[0].Tag != "ref-adapter" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Stats.Adapters["Date"] != 1 {
		t.Errorf("adapters = %v", decoded.Stats.Adapters)
	}
}

func TestCountList(t *testing.T) {
	if got := countList(map[string]int{"b": 1, "a": 2}); got != "a (2), b (1)" {
		t.Errorf("countList = %q", got)
	}
}
