// Package markdown renders post bodies for the read view.
package markdown

import (
	"bytes"

	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

type goldmarkRenderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a renderer producing safe HTML. Raw HTML in the source is dropped.
func NewRenderer() service.MarkdownRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				goldmarkHTML.WithHardWraps(),
			),
		),
	}
}

func (r *goldmarkRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", errors.Wrap(err, "failed to render markdown")
	}

	return buf.String(), nil
}
