package batch

import (
	"github.com/itsmostafa/realbooks/internal/config"
	"github.com/itsmostafa/realbooks/internal/extract"
	"github.com/itsmostafa/realbooks/internal/song"
)

// CheckedEntry is the dry-run view of one configuration entry.
type CheckedEntry struct {
	Index           int
	File            string
	OutputDirectory string
	Abbreviation    string
	// PageCount is zero when the source could not be opened.
	PageCount int
	Songs     []song.Definition
	Problems  []error
}

// CheckReport is the result of Check.
type CheckReport struct {
	Entries  []CheckedEntry
	Problems int
}

// Check validates a configuration and the page bounds of its songs
// without writing any file.
func (r *Runner) Check(configFile string) (*CheckReport, error) {
	entries, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{}
	for _, raw := range entries {
		checked := CheckedEntry{Index: raw.Index}

		entry, err := raw.Decode()
		if err != nil {
			checked.Problems = append(checked.Problems, err)
			report.add(checked)
			continue
		}
		checked.File = entry.File
		checked.OutputDirectory = entry.OutputDirectory
		checked.Abbreviation = entry.Abbreviation

		for _, node := range entry.Songs {
			def, err := song.Build(node, entry.Offset)
			if err != nil {
				checked.Problems = append(checked.Problems, err)
				continue
			}
			checked.Songs = append(checked.Songs, def)
		}

		count, problems, err := extract.Validate(entry.File, checked.Songs)
		if err != nil {
			checked.Problems = append(checked.Problems, err)
		}
		checked.PageCount = count
		checked.Problems = append(checked.Problems, problems...)

		report.add(checked)
	}

	r.Log.Debug("configuration checked", "path", configFile, "entries", len(report.Entries), "problems", report.Problems)
	return report, nil
}

func (c *CheckReport) add(entry CheckedEntry) {
	c.Entries = append(c.Entries, entry)
	c.Problems += len(entry.Problems)
}
