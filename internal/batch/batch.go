// Package batch runs a whole configuration: every real book entry is
// validated and extracted in turn, then the output directories are
// optionally compiled.
//
// Only a configuration that cannot be loaded stops a run. Every other
// problem is logged and confined to the smallest unit it affects: a song,
// an entry or a file.
package batch

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/itsmostafa/realbooks/internal/compile"
	"github.com/itsmostafa/realbooks/internal/config"
	"github.com/itsmostafa/realbooks/internal/extract"
	"github.com/itsmostafa/realbooks/internal/song"
)

// Options configures a run.
type Options struct {
	ConfigFile        string
	CompileFromConfig bool
	CompiledFilename  string
}

// Report summarises a run.
type Report struct {
	Entries        int
	EntriesSkipped int
	SongsWritten   int
	SongsSkipped   int
	// Directories are the distinct output directories that received songs, sorted.
	Directories []string
	Compiled    []*compile.Result
	Elapsed     time.Duration
}

// Runner executes configurations.
type Runner struct {
	Log       *slog.Logger
	Extractor *extract.Extractor
	Compiler  *compile.Compiler
}

// New returns a Runner whose components share log.
func New(log *slog.Logger, compress bool) *Runner {
	return &Runner{
		Log:       log,
		Extractor: extract.New(log),
		Compiler:  compile.New(log, compress),
	}
}

// Run processes every entry of opts.ConfigFile. The returned error is
// always a *config.LoadError.
func (r *Runner) Run(opts Options) (*Report, error) {
	start := time.Now()
	report := &Report{}
	defer func() {
		report.Elapsed = time.Since(start)
		r.Log.Info("runtime", "seconds", report.Elapsed.Seconds())
	}()

	entries, err := config.Load(opts.ConfigFile)
	if err != nil {
		return report, err
	}
	r.Log.Debug("configuration loaded", "path", opts.ConfigFile, "entries", len(entries))

	directories := make(map[string]struct{})
	for _, raw := range entries {
		report.Entries++
		dir, ok := r.runEntry(raw, report)
		if !ok {
			report.EntriesSkipped++
			continue
		}
		directories[dir] = struct{}{}
	}

	for dir := range directories {
		report.Directories = append(report.Directories, dir)
	}
	slices.Sort(report.Directories)

	if opts.CompileFromConfig && len(report.Directories) > 0 {
		filename := opts.CompiledFilename
		if filename == "" {
			filename = compile.DefaultFilename
		}
		report.Compiled = r.Compiler.CompileDirectories(report.Directories, filename)
	}

	return report, nil
}

// runEntry extracts one entry and returns its output directory. ok is false
// when the entry was skipped.
func (r *Runner) runEntry(raw config.RawEntry, report *Report) (dir string, ok bool) {
	entry, err := raw.Decode()
	if err != nil {
		r.Log.Error("invalid configuration entry", "entry", raw.Index, "error", err)
		return "", false
	}
	log := r.Log.With("entry", entry.Index, "source", entry.File)

	songs := buildSongs(log, entry)
	if len(songs) == 0 {
		log.Warn("no valid songs were defined for configuration entry")
		return "", false
	}
	report.SongsSkipped += len(entry.Songs) - len(songs)

	result, err := r.Extractor.Extract(entry.File, songs, entry.OutputDirectory, entry.Abbreviation)
	if err != nil {
		var notFound *extract.SourceNotFoundError
		if errors.As(err, &notFound) {
			log.Error("input PDF was not found")
		} else {
			log.Error("failed to extract songs", "error", err)
		}
		report.SongsSkipped += len(songs)
		return "", false
	}

	report.SongsWritten += len(result.Written)
	report.SongsSkipped += len(result.Skipped)
	return entry.OutputDirectory, true
}

func buildSongs(log *slog.Logger, entry *config.Entry) []song.Definition {
	songs := make([]song.Definition, 0, len(entry.Songs))
	for i, node := range entry.Songs {
		def, err := song.Build(node, entry.Offset)
		if err != nil {
			log.Error("invalid song definition", "song", i+1, "error", err)
			continue
		}
		songs = append(songs, def)
	}
	return songs
}
