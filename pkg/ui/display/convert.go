package display

import (
	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/core"
	"github.com/arthur-debert/vibesync/pkg/executor"
	"github.com/arthur-debert/vibesync/pkg/presets"
)

// FromCheck builds the report of a check run
func FromCheck(result *core.CheckResult) *CheckReport {
	report := &CheckReport{
		Source:       result.Source.String(),
		AllInSync:    result.AllInSync(),
		Destinations: make([]CheckLine, 0, len(result.Statuses)),
		Narration:    result.Narration,
	}
	if result.Config != nil {
		report.Config = result.Config.Path
	}
	for _, s := range result.Statuses {
		report.Destinations = append(report.Destinations, CheckLine{
			Destination: s.Destination.DisplayName(),
			Path:        s.Destination.Path,
			Adapter:     s.Adapter,
			InSync:      s.Result.InSync,
			Reason:      string(s.Result.Reason),
			File:        s.Result.Path,
			Detail:      s.Result.String(),
		})
	}
	return report
}

// FromSync builds the report of a sync run
func FromSync(result *core.SyncResult) *SyncReport {
	report := &SyncReport{
		Source:       result.Source.String(),
		Destinations: make([]SyncLine, 0, len(result.Destinations)),
	}
	if result.Config != nil {
		report.Config = result.Config.Path
	}
	for _, d := range result.Destinations {
		line := SyncLine{
			Destination: d.Destination.DisplayName(),
			Path:        d.Destination.Path,
			Adapter:     d.Adapter,
			Actions:     actions.Describe(d.Plan),
			Summary:     executor.Summary(d.Results),
		}
		report.Destinations = append(report.Destinations, line)
	}
	return report
}

// FromPresets builds the preset table
func FromPresets(list []presets.Preset) *PresetList {
	out := &PresetList{Presets: make([]PresetLine, 0, len(list))}
	for _, p := range list {
		out.Presets = append(out.Presets, PresetLine{
			Name:        p.Name,
			Path:        p.Path,
			Type:        string(p.Type),
			Description: p.Description,
		})
	}
	return out
}
