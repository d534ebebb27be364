// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"convert", "convrt", 1},
		{"inspect", "insepct", 2},
		{"unpack", "unpakc", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"pack", "pakc"},
		{"validate", "valdiate"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "convert"},
		{Name: "inspect"},
		{Name: "validate"},
		{Name: "pack"},
		{Name: "unpack"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"convrt", "convert"},
		{"inspct", "inspect"},
		{"valdate", "validate"},
		{"pakc", "pack"},
		{"unpak", "unpack"},
		{"vrsion", "version"},
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("pack", pflag.ContinueOnError)
		flagSet.String("compression", "auto", "")
		flagSet.StringP("output", "o", "", "")
		flagSet.String("key-file", "", "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo", []string{"--compresion", "zstd"}, "--compression"},
		{"with value", []string{"--keyfile=/tmp/k"}, "--key-file"},
		{"known flags skipped", []string{"-o", "out", "--ouput", "x"}, "--output"},
		{"nothing close", []string{"--zzzzzzzzzz"}, ""},
		{"after terminator", []string{"--", "--compresion"}, ""},
		{"positional only", []string{"graph.json"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, newFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
