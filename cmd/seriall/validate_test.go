// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/seriall/cmd/seriall/cli"
	"github.com/bureau-foundation/seriall/lib/config"
	"github.com/bureau-foundation/seriall/lib/format"
	"github.com/bureau-foundation/seriall/lib/seriall"
)

func TestValidateInput(t *testing.T) {
	builtin := config.Default().Options(nil)
	noAdapters := config.Default()
	noAdapters.Engine.BuiltinAdapters = false
	withoutAdapters := noAdapters.Options(nil)

	tests := []struct {
		name    string
		data    string
		options *seriall.Options
		want    string
	}{
		{"plain object", plainObject, nil, "valid"},
		{"plain object resolved", plainObject, &builtin, "valid"},
		{"malformed json", `[{"T":`, nil, "invalid: decoding stdin as json"},
		{"dangling index", `[[5]]`, nil, "invalid: "},
		{"unknown tag", `[{"T":42}]`, nil, "invalid: "},
		{"unknown palette key", `[{"K":"Nope","T":7}]`, &builtin, `invalid: node 0: unresolved palette key "Nope"`},
		{"unknown adapter", `[{"N":"Nope","T":8,"V":1},"payload"]`, &builtin, `invalid: node 0: unresolved adapter "Nope"`},
		{"adapter disabled", `[{"N":"Date","T":8,"V":1},0]`, &withoutAdapters, `invalid: node 0: unresolved adapter "Date"`},
		{"adapter structure only", `[{"N":"Nope","T":8,"V":1},"payload"]`, nil, "valid"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buffer bytes.Buffer
			err := validateInput(context.Background(), &input{data: []byte(test.data)}, format.JSON, test.options, &buffer, painter{})

			output := buffer.String()
			if !strings.HasPrefix(output, test.want) {
				t.Errorf("output = %q, want prefix %q", output, test.want)
			}
			valid := test.want == "valid"
			var exitError *cli.ExitError
			switch {
			case valid && err != nil:
				t.Errorf("err = %v for a valid document", err)
			case !valid && (!errors.As(err, &exitError) || exitError.Code != 1):
				t.Errorf("err = %v, want ExitError{1}", err)
			}
		})
	}
}
