package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. Without color it uses the
// plain style; on any renderer failure the raw text comes back.
func RenderMarkdown(md string) string {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(100),
	)
	if err != nil {
		Logger.Debug("markdown renderer unavailable", "err", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
