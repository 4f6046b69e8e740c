// Package display holds the presentation model shared by every renderer.
// Reports are built from core results and carry both the structured fields
// used by the JSON and YAML renderers and the markup lines used by the text
// and terminal renderers.
package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/style"
)

// Summary lines printed after check and sync
const (
	MsgAllInSync     = "All items are in sync!"
	MsgOutOfSync     = "Some items are out of sync. Please run 'vibesync sync' to fix."
	MsgSyncCompleted = "Sync completed successfully!"
)

// CheckReport is the presentation of a check run
type CheckReport struct {
	Config       string      `json:"config" yaml:"config"`
	Source       string      `json:"source" yaml:"source"`
	AllInSync    bool        `json:"all_in_sync" yaml:"all_in_sync"`
	Destinations []CheckLine `json:"destinations" yaml:"destinations"`
	Narration    []string    `json:"-" yaml:"-"`
}

// CheckLine is one destination of a check run
type CheckLine struct {
	Destination string `json:"destination" yaml:"destination"`
	Path        string `json:"path" yaml:"path"`
	Adapter     string `json:"adapter" yaml:"adapter"`
	InSync      bool   `json:"in_sync" yaml:"in_sync"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`
	File        string `json:"file,omitempty" yaml:"file,omitempty"`
	Detail      string `json:"detail" yaml:"detail"`
}

// Summary returns the closing sentence of the report
func (r *CheckReport) Summary() string {
	if r.AllInSync {
		return MsgAllInSync
	}
	return MsgOutOfSync
}

// Lines renders the report as markup lines
func (r *CheckReport) Lines() []string {
	lines := append([]string{}, r.Narration...)
	if len(r.Narration) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("[title]Source:[/title] [path]%s[/path]", r.Source))
	for _, d := range r.Destinations {
		status := style.StatusInSync
		if !d.InSync {
			status = style.StatusDrift
		}
		lines = append(lines, fmt.Sprintf("  %s %s [muted](%s)[/muted] [adapter]%s[/adapter]: %s",
			status.Marker(), d.Destination, d.Path, d.Adapter, d.Detail))
	}
	tag := style.StatusInSync.Tag()
	if !r.AllInSync {
		tag = style.StatusDrift.Tag()
	}
	return append(lines, "", fmt.Sprintf("[%s]%s[/%s]", tag, r.Summary(), tag))
}

// SyncReport is the presentation of a sync run
type SyncReport struct {
	Config       string     `json:"config" yaml:"config"`
	Source       string     `json:"source" yaml:"source"`
	Destinations []SyncLine `json:"destinations" yaml:"destinations"`
	Verbose      bool       `json:"-" yaml:"-"`
}

// SyncLine is one destination of a sync run
type SyncLine struct {
	Destination string   `json:"destination" yaml:"destination"`
	Path        string   `json:"path" yaml:"path"`
	Adapter     string   `json:"adapter" yaml:"adapter"`
	Actions     []string `json:"actions" yaml:"actions"`
	Summary     string   `json:"summary" yaml:"summary"`
}

// Summary returns the closing sentence of the report
func (r *SyncReport) Summary() string {
	return MsgSyncCompleted
}

// Lines renders the report as markup lines. Actions are listed only for
// verbose reports.
func (r *SyncReport) Lines() []string {
	lines := []string{fmt.Sprintf("[title]Source:[/title] [path]%s[/path]", r.Source)}
	status := style.StatusSynced
	for _, d := range r.Destinations {
		lines = append(lines, fmt.Sprintf("  %s %s [muted](%s)[/muted] [adapter]%s[/adapter]: %s",
			status.Marker(), d.Destination, d.Path, d.Adapter, d.Summary))
		if r.Verbose {
			for _, a := range d.Actions {
				lines = append(lines, style.Indent("[code]"+a+"[/code]", 3))
			}
		}
	}
	tag := status.Tag()
	return append(lines, "", fmt.Sprintf("[%s]%s[/%s]", tag, r.Summary(), tag))
}

// PresetList is the table printed by the presets command
type PresetList struct {
	Presets []PresetLine `json:"presets" yaml:"presets"`
}

// PresetLine describes one preset
type PresetLine struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// Markdown renders the list as a markdown table
func (l *PresetList) Markdown() string {
	var b strings.Builder
	b.WriteString("# Presets\n\n")
	b.WriteString("| Name | Path | Type | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, p := range l.Presets {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", p.Name, p.Path, p.Type, p.Description)
	}
	return b.String()
}
