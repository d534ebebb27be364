// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/seriall/lib/pure"
)

// Terminal styles. Colors are ANSI 256 codes for broad terminal
// compatibility.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	tagColors = map[pure.Tag]lipgloss.Color{
		pure.TagRaw:        "252",
		pure.TagArray:      "180",
		pure.TagSymbol:     "176",
		pure.TagBigInt:     "215",
		pure.TagSpecial:    "245",
		pure.TagPrototype:  "141",
		pure.TagObject:     "117",
		pure.TagRefValue:   "150",
		pure.TagRefAdapter: "222",
	}
)

// painter applies styles only when output is styled.
type painter struct {
	styled bool
}

func (p painter) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

func (p painter) tag(tag pure.Tag, text string) string {
	color, ok := tagColors[tag]
	if !ok {
		return text
	}
	return p.render(lipgloss.NewStyle().Foreground(color), text)
}
