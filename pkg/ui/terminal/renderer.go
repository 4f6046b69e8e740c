// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/vibesync/pkg/style"
	"github.com/arthur-debert/vibesync/pkg/ui/display"
)

// Renderer provides styled terminal output: lipgloss markup for reports and
// glamour for markdown
type Renderer struct {
	output io.Writer
	// Width wraps rendered markdown; 0 keeps glamour's default
	Width int
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a report with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.CheckReport:
		return r.lines(v.Lines())
	case *display.SyncReport:
		return r.lines(v.Lines())
	case *display.PresetList:
		_, err := io.WriteString(r.output, r.markdown(v.Markdown()))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) lines(lines []string) error {
	_, err := fmt.Fprintln(r.output, style.Render(strings.Join(lines, "\n")))
	return err
}

// markdown renders content with glamour, falling back to the raw text
func (r *Renderer) markdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, style.ErrorStyle.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a message, resolving markup tags
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}
