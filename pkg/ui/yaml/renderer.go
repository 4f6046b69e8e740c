// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/style"
)

// Renderer writes one YAML document per call
type Renderer struct {
	encoder *yamlv3.Encoder
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := yamlv3.NewEncoder(output)
	encoder.SetIndent(2)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as YAML, with its code when it has one
func (r *Renderer) RenderError(err error) error {
	doc := map[string]string{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc["code"] = string(code)
	}
	return r.encoder.Encode(doc)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": style.Strip(msg)})
}
