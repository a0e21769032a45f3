// Package eda runs the fixed exploratory sequence over a loaded table:
// the text summary first, then each figure in turn.
package eda

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/titanic-eda/internal/charts"
	"github.com/KaramelBytes/titanic-eda/internal/dataset"
	"github.com/KaramelBytes/titanic-eda/internal/report"
	"github.com/KaramelBytes/titanic-eda/internal/utils"
)

// Options selects what a run produces.
type Options struct {
	OutputDir string
	Format    string
	HeadRows  int
	// Summary prints the text reports before any figure.
	Summary bool
	// Steps limits the figures by name; empty means all.
	Steps  []string
	Charts charts.Options
	Debug  bool
}

// Runner executes steps one after another, writing text to Out and
// diagnostics to Err.
type Runner struct {
	Out io.Writer
	Err io.Writer
	opt Options
}

// New returns a Runner for opt.
func New(out, errw io.Writer, opt Options) *Runner {
	if opt.Format == "" {
		opt.Format = "png"
	}
	return &Runner{Out: out, Err: errw, opt: opt}
}

// Run prints the summary (if enabled) and renders the selected figures.
// The returned manifest is nil when no figure was requested.
func (r *Runner) Run(tbl *dataset.Table) (*Manifest, error) {
	if r.opt.Summary {
		if err := report.Summary(r.Out, tbl, report.Options{HeadRows: r.opt.HeadRows}); err != nil {
			return nil, err
		}
	}
	steps, err := r.selected()
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, nil
	}
	if !charts.ValidFormat(r.opt.Format) {
		return nil, fmt.Errorf("unsupported image format %q (use one of %s)", r.opt.Format, strings.Join(charts.Formats, ", "))
	}
	if err := utils.EnsureDir(r.opt.OutputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	m := NewManifest(tbl.Name(), tbl.Rows())
	fmt.Fprintln(r.Out)
	for _, s := range steps {
		entry, err := r.render(tbl, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		m.Figures = append(m.Figures, entry)
	}
	if err := m.Save(r.opt.OutputDir); err != nil {
		return nil, err
	}
	if r.opt.Debug {
		fmt.Fprintf(r.Err, "run %s: %d figures in %s\n", m.RunID, len(m.Figures), r.opt.OutputDir)
	}
	return m, nil
}

// render builds, writes and releases one figure.
func (r *Runner) render(tbl *dataset.Table, s charts.Step) (FigureEntry, error) {
	fig, err := s.Build(tbl, r.opt.Charts)
	if err != nil {
		return FigureEntry{}, err
	}
	path := filepath.Join(r.opt.OutputDir, s.File+"."+strings.ToLower(r.opt.Format))
	if err := fig.Save(path); err != nil {
		return FigureEntry{}, err
	}
	fmt.Fprintf(r.Out, "✓ Wrote %s figure to %s\n", s.Name, path)
	if r.opt.Debug {
		for _, n := range fig.Notes {
			fmt.Fprintf(r.Err, "  %s: %s\n", s.Name, n)
		}
	}
	title := fig.Title
	if title == "" && fig.Rows() > 0 && fig.Cols() > 0 {
		title = fig.Panels[0][0].Title.Text
	}
	return FigureEntry{Step: s.Name, Title: title, File: filepath.Base(path), Notes: fig.Notes}, nil
}

func (r *Runner) selected() ([]charts.Step, error) {
	if r.opt.Steps == nil {
		return charts.Steps(), nil
	}
	out := make([]charts.Step, 0, len(r.opt.Steps))
	for _, name := range r.opt.Steps {
		s, ok := charts.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown figure %q (use one of %s)", name, strings.Join(charts.StepNames(), ", "))
		}
		out = append(out, s)
	}
	return out, nil
}
