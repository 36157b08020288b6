// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/wheresmy/pkg/ui/display"
)

// StyleFunc decorates a piece of text with a named style
type StyleFunc func(style, text string) string

func plain(_ string, text string) string { return text }

// Renderer writes results as lines of text
type Renderer struct {
	output io.Writer
	style  StyleFunc
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, nil)
}

// NewStyled creates a renderer that passes every fragment through style
func NewStyled(output io.Writer, style StyleFunc) (*Renderer, error) {
	if style == nil {
		style = plain
	}
	return &Renderer{output: output, style: style}, nil
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.DeviceListResult:
		return r.renderDeviceList(v)
	case *display.DeviceResult:
		return r.println(fmt.Sprintf("%s %s", v.Action, r.device(v.Device)))
	case *display.IconListResult:
		return r.renderIcons(v)
	case *display.PingResult:
		return r.println(fmt.Sprintf("Asked Siri %s %s",
			r.style("Phrase", fmt.Sprintf("%q", v.Phrase)),
			r.style("Muted", "("+r.style("Shortcut", v.Shortcut)+")")))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as text
func (r *Renderer) RenderError(err error) error {
	return r.println(r.style("Error", "Error: ") + err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) renderDeviceList(result *display.DeviceListResult) error {
	if len(result.Devices) == 0 {
		if err := r.println(r.style("NoContent", "No devices yet.")); err != nil {
			return err
		}
	}
	for _, d := range result.Devices {
		if err := r.println(r.device(d)); err != nil {
			return err
		}
	}
	return r.println(r.style("AddHint", "+ "+display.AddDeviceHint))
}

func (r *Renderer) renderIcons(result *display.IconListResult) error {
	for _, icon := range result.Icons {
		line := fmt.Sprintf("%s %-12s %s %s",
			icon.Glyph,
			icon.Alias,
			icon.Title,
			r.style("Muted", "("+icon.Token+")"))
		if err := r.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) device(d display.DeviceView) string {
	return fmt.Sprintf("%s %s %s",
		d.Glyph,
		r.style("DeviceName", d.Name),
		r.style("DeviceID", "("+d.ID+")"))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
