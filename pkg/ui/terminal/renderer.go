// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/arthur-debert/wheresmy/pkg/ui/output/styles"
	"github.com/arthur-debert/wheresmy/pkg/ui/text"
)

// Renderer lays out results like the text renderer and applies the style registry
type Renderer struct {
	*text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	inner, err := text.NewStyled(w, styles.Render)
	if err != nil {
		return nil, err
	}
	return &Renderer{Renderer: inner}, nil
}
