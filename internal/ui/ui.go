// Package ui holds the shared color palette for CLI output.
package ui

import "github.com/fatih/color"

var (
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed, color.Bold)
	Subtle = color.New(color.FgHiBlack)
)
