package actions

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/errors"
)

// Kind identifies the variant of an Action
type Kind string

const (
	KindMkdir     Kind = "mkdir"
	KindCopy      Kind = "copy"
	KindMerge     Kind = "merge"
	KindTransform Kind = "transform"
)

// ContentTransform rewrites file content. It must be pure.
type ContentTransform func(content string) string

// MergeSeparator joins the contents of merged files
const MergeSeparator = "\n"

// Action is one step of a sync plan. The set of implementations is closed.
type Action interface {
	// Kind returns the action variant
	Kind() Kind
	// Target returns the path the action writes to
	Target() string
	// Validate reports malformed actions before any I/O happens
	Validate() error
	String() string

	isAction()
}

// Mkdir creates a directory. Creating an existing directory is not an error.
type Mkdir struct {
	Directory string
	Recursive bool
}

func (a Mkdir) Kind() Kind     { return KindMkdir }
func (a Mkdir) Target() string { return a.Directory }
func (a Mkdir) isAction()      {}

func (a Mkdir) Validate() error {
	if a.Directory == "" {
		return errors.New(errors.ErrActionInvalid, "mkdir requires a directory")
	}
	return nil
}

func (a Mkdir) String() string {
	return fmt.Sprintf("mkdir %s", a.Directory)
}

// Copy copies a file, or a whole tree when Recursive is set.
// With Overwrite unset an existing destination is left alone.
type Copy struct {
	Source      string
	Destination string
	Recursive   bool
	Overwrite   bool
}

func (a Copy) Kind() Kind     { return KindCopy }
func (a Copy) Target() string { return a.Destination }
func (a Copy) isAction()      {}

func (a Copy) Validate() error {
	if a.Source == "" || a.Destination == "" {
		return errors.New(errors.ErrActionInvalid, "copy requires source and destination").
			WithDetail("source", a.Source).
			WithDetail("destination", a.Destination)
	}
	return nil
}

func (a Copy) String() string {
	flags := ""
	if a.Recursive {
		flags = " (recursive)"
	}
	return fmt.Sprintf("copy %s -> %s%s", a.Source, a.Destination, flags)
}

// Merge concatenates Sources in order, joined by MergeSeparator, into one file
type Merge struct {
	Sources     []string
	Destination string
}

func (a Merge) Kind() Kind     { return KindMerge }
func (a Merge) Target() string { return a.Destination }
func (a Merge) isAction()      {}

func (a Merge) Validate() error {
	if a.Destination == "" {
		return errors.New(errors.ErrActionInvalid, "merge requires a destination")
	}
	if len(a.Sources) == 0 {
		return errors.New(errors.ErrActionInvalid, "merge requires at least one source").
			WithDetail("destination", a.Destination)
	}
	return nil
}

func (a Merge) String() string {
	return fmt.Sprintf("merge [%s] -> %s", strings.Join(a.Sources, ", "), a.Destination)
}

// Transform reads Source, applies Transform and writes Destination
type Transform struct {
	Source      string
	Destination string
	Transform   ContentTransform
}

func (a Transform) Kind() Kind     { return KindTransform }
func (a Transform) Target() string { return a.Destination }
func (a Transform) isAction()      {}

func (a Transform) Validate() error {
	if a.Source == "" || a.Destination == "" {
		return errors.New(errors.ErrActionInvalid, "transform requires source and destination")
	}
	if a.Transform == nil {
		return errors.New(errors.ErrActionInvalid, "transform requires a content function").
			WithDetail("source", a.Source)
	}
	return nil
}

func (a Transform) String() string {
	return fmt.Sprintf("transform %s -> %s", a.Source, a.Destination)
}

// MergeContents joins already-read file contents the way a Merge action does
func MergeContents(contents []string) string {
	return strings.Join(contents, MergeSeparator)
}

// Describe renders a plan one action per line
func Describe(plan []Action) []string {
	lines := make([]string, len(plan))
	for i, a := range plan {
		lines[i] = a.String()
	}
	return lines
}
