// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/seriall/lib/format"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Output   string        `flag:"output,o" desc:"output path"`
		Force    bool          `flag:"force,f" desc:"overwrite output"`
		Indent   int           `flag:"indent" desc:"indent width"`
		Limit    int64         `flag:"limit" desc:"byte limit"`
		Ratio    float64       `flag:"ratio" desc:"minimum compression ratio"`
		Timeout  time.Duration `flag:"timeout" desc:"read timeout"`
		Classes  []string      `flag:"classes" desc:"class names"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"-o", "graph.srll",
		"-f",
		"--indent", "4",
		"--limit", "1099511627776",
		"--ratio", "1.5",
		"--timeout", "30s",
		"--classes", "Point,Line",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Output != "graph.srll" {
		t.Errorf("Output = %q, want %q", p.Output, "graph.srll")
	}
	if !p.Force {
		t.Error("Force = false, want true")
	}
	if p.Indent != 4 {
		t.Errorf("Indent = %d, want 4", p.Indent)
	}
	if p.Limit != 1099511627776 {
		t.Errorf("Limit = %d, want 1099511627776", p.Limit)
	}
	if p.Ratio != 1.5 {
		t.Errorf("Ratio = %f, want 1.5", p.Ratio)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if len(p.Classes) != 2 || p.Classes[0] != "Point" || p.Classes[1] != "Line" {
		t.Errorf("Classes = %v, want [Point Line]", p.Classes)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Compression string        `flag:"compression" default:"auto"`
		Indent      int           `flag:"indent" default:"-1"`
		Limit       int64         `flag:"limit" default:"100"`
		Ratio       float64       `flag:"ratio" default:"0.5"`
		Timeout     time.Duration `flag:"timeout" default:"10s"`
		Resolve     bool          `flag:"resolve" default:"true"`
		Classes     []string      `flag:"classes" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--indent", "0"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Compression != "auto" {
		t.Errorf("Compression = %q, want auto", p.Compression)
	}
	if p.Indent != 0 {
		t.Errorf("Indent = %d, want 0 (CLI overrides default)", p.Indent)
	}
	if p.Limit != 100 || p.Ratio != 0.5 || p.Timeout != 10*time.Second {
		t.Errorf("numeric defaults = %d %f %v", p.Limit, p.Ratio, p.Timeout)
	}
	if !p.Resolve {
		t.Error("Resolve = false, want true")
	}
	if len(p.Classes) != 2 || p.Classes[0] != "x" {
		t.Errorf("Classes = %v, want [x y]", p.Classes)
	}
}

func TestBindFlags_TextTypes(t *testing.T) {
	type params struct {
		From    *format.Format `flag:"from" desc:"input framing"`
		To      *format.Format `flag:"to" desc:"output framing"`
		Default format.Format  `flag:"default" desc:"fallback framing" default:"yaml"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if p.Default != format.YAML {
		t.Errorf("Default = %s before parse, want yaml", p.Default)
	}
	if err := flagSet.Parse([]string{"--to", "cbor"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.From != nil {
		t.Errorf("From = %s, want nil when not given", *p.From)
	}
	if p.To == nil || *p.To != format.CBOR {
		t.Errorf("To = %v, want cbor", p.To)
	}
	if got := flagSet.Lookup("to").Value.String(); got != "cbor" {
		t.Errorf("--to String() = %q, want cbor", got)
	}
	if got := flagSet.Lookup("to").Value.Type(); got != "format" {
		t.Errorf("--to Type() = %q, want format", got)
	}
}

func TestBindFlags_TextTypeRejectsBadValue(t *testing.T) {
	type params struct {
		To *format.Format `flag:"to"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.SetOutput(&strings.Builder{})
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--to", "xml"}); err == nil {
		t.Fatal("Parse accepted an unknown format")
	}
	if p.To != nil {
		t.Errorf("To = %s after a failed Set, want nil", *p.To)
	}

	type badDefault struct {
		To format.Format `flag:"to" default:"xml"`
	}
	if err := BindFlags(&badDefault{}, pflag.NewFlagSet("test", pflag.ContinueOnError)); err == nil {
		t.Error("BindFlags accepted an unknown default format")
	}
}

// TestParamsBinder implements FlagBinder. Exported so that reflect can
// call Interface() on it when embedded.
type TestParamsBinder struct {
	KeyFile string
	Ratio   int
}

func (b *TestParamsBinder) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&b.KeyFile, "key-file", "", "key file")
	flagSet.IntVar(&b.Ratio, "ratio", 0, "ratio")
}

func TestBindFlags_NamedFlagBinder(t *testing.T) {
	type params struct {
		Binder TestParamsBinder
		Extra  string `flag:"extra" desc:"extra flag"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--key-file", "/tmp/master.key", "--ratio", "7", "--extra", "world"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Binder.KeyFile != "/tmp/master.key" {
		t.Errorf("Binder.KeyFile = %q", p.Binder.KeyFile)
	}
	if p.Binder.Ratio != 7 {
		t.Errorf("Binder.Ratio = %d, want 7", p.Binder.Ratio)
	}
	if p.Extra != "world" {
		t.Errorf("Extra = %q, want %q", p.Extra, "world")
	}
}

func TestBindFlags_EmbeddedFlagBinder(t *testing.T) {
	type params struct {
		TestParamsBinder
		Extra string `flag:"extra" desc:"extra flag"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--key-file", "k", "--extra", "world"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.KeyFile != "k" || p.Extra != "world" {
		t.Errorf("params = %+v", p)
	}
}

func TestBindFlags_EmbeddedStructRecursion(t *testing.T) {
	type params struct {
		JSONOutput
		ConfigFile
		Resolve bool `flag:"resolve"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json", "--config", "/etc/seriall.yaml", "--resolve"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !p.OutputJSON {
		t.Error("OutputJSON = false, want true")
	}
	if p.ConfigPath != "/etc/seriall.yaml" {
		t.Errorf("ConfigPath = %q", p.ConfigPath)
	}
	if !p.Resolve {
		t.Error("Resolve = false, want true")
	}
}

func TestBindFlags_ErrorNotPointer(t *testing.T) {
	type params struct {
		Name string `flag:"name"`
	}
	var p params
	err := BindFlags(p, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil {
		t.Fatal("expected error for non-pointer, got nil")
	}
	if want := "params must be a pointer to a struct"; !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want substring %q", err.Error(), want)
	}
}

func TestBindFlags_ErrorNotStruct(t *testing.T) {
	s := "not a struct"
	if err := BindFlags(&s, pflag.NewFlagSet("test", pflag.ContinueOnError)); err == nil {
		t.Fatal("expected error for non-struct, got nil")
	}
}

func TestBindFlags_ErrorBadDefault(t *testing.T) {
	type params struct {
		Indent int `flag:"indent" default:"not_a_number"`
	}
	var p params
	if err := BindFlags(&p, pflag.NewFlagSet("test", pflag.ContinueOnError)); err == nil {
		t.Fatal("expected error for bad default, got nil")
	}
}

func TestBindFlags_ErrorUnsupportedType(t *testing.T) {
	type params struct {
		Ratios map[string]int `flag:"ratios"`
	}
	var p params
	err := BindFlags(&p, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("err = %v, want unsupported type", err)
	}
}

func TestFlagsFromParams_DefaultUsedWhenNotParsed(t *testing.T) {
	type params struct {
		Compression string `flag:"compression" default:"auto"`
	}

	var p params
	flagSet := FlagsFromParams("pack", &p)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Compression != "auto" {
		t.Errorf("Compression = %q, want auto", p.Compression)
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil input, got none")
		}
	}()
	FlagsFromParams("test", nil)
}

func TestBindFlags_PositionalArgsRemain(t *testing.T) {
	type params struct {
		Compression string `flag:"compression" default:"auto"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--compression", "lz4", "graph.json"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	remaining := flagSet.Args()
	if len(remaining) != 1 || remaining[0] != "graph.json" {
		t.Errorf("remaining args = %v, want [graph.json]", remaining)
	}
	if p.Compression != "lz4" {
		t.Errorf("Compression = %q, want lz4", p.Compression)
	}
}
