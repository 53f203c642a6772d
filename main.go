package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/llehouerou/unexotica/internal/bundle"
	"github.com/llehouerou/unexotica/internal/catalog"
	"github.com/llehouerou/unexotica/internal/config"
	"github.com/llehouerou/unexotica/internal/errmsg"
	"github.com/llehouerou/unexotica/internal/scan"
	"github.com/llehouerou/unexotica/internal/state"
	"github.com/llehouerou/unexotica/internal/ui/report"
	"github.com/llehouerou/unexotica/internal/ui/scanreport"
)

const defaultWidth = 100

type options struct {
	title       string
	configPath  string
	dbPath      string
	jsonOut     bool
	interactive bool
	cache       bool
	force       bool
	workers     int
	zipDir      string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("unexotica: ")

	var opts options
	flag.StringVar(&opts.title, "title", "", "game title for override lookups")
	flag.StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/unexotica/config.toml, ./config.toml)")
	flag.StringVar(&opts.dbPath, "db", "", "cache database (default: per-user data directory)")
	flag.BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	flag.BoolVar(&opts.interactive, "i", false, "browse results interactively")
	flag.BoolVar(&opts.cache, "cache", false, "scan through the cache, skipping unchanged files")
	flag.BoolVar(&opts.force, "force", false, "with -cache, decode every file again")
	flag.IntVar(&opts.workers, "workers", 0, "decoder goroutines (default: from config, 8)")
	flag.StringVar(&opts.zipDir, "zip", "", "without -cache, write songs with separate samples to DIR as <song>.zip bundles")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: unexotica [flags] path...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(opts options, paths []string) error {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFiles(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	title := opts.title
	if title == "" {
		title = cfg.Title
	}
	title = catalog.SortTitle(title)
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}

	splitter := catalog.NewSplitter(cfg.OverrideTable())

	var entries []report.Entry
	if opts.cache {
		entries, err = scanCached(opts, cfg, title, splitter, paths)
	} else {
		entries = decodeDirect(opts, cfg, title, splitter, paths)
	}
	if err != nil {
		return err
	}

	switch {
	case opts.jsonOut:
		if err := report.WriteJSON(os.Stdout, entries); err != nil {
			return errors.New(errmsg.Format(errmsg.OpReportWrite, err))
		}
	case opts.interactive:
		p := tea.NewProgram(report.NewModel(entries), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return errors.New(errmsg.Format(errmsg.OpReportBrowse, err))
		}
	default:
		fmt.Print(report.Render(entries, terminalWidth()))
	}
	return nil
}

// decodeDirect decodes every song under paths without touching the cache.
// With -zip, loose songs that need samples are bundled with them.
func decodeDirect(opts options, cfg *config.Config, title string, splitter *catalog.Splitter, paths []string) []report.Entry {
	samples := cfg.SamplesOverrides()

	var entries []report.Entry
	for _, root := range paths {
		for _, path := range collect(root) {
			rel := relative(root, path)
			_, name, _ := scan.Classify(rel)

			f, err := scan.Open(path, samples)
			if err != nil {
				entries = append(entries, report.Entry{Path: path, Name: name, Err: err})
				continue
			}
			if opts.zipDir != "" && len(f.Bundle) > 1 && !strings.EqualFold(filepath.Ext(path), ".zip") {
				zipPath := filepath.Join(opts.zipDir, filepath.FromSlash(name)) + ".zip"
				if err := bundle.WriteZip(zipPath, f.Bundle); err != nil {
					log.Print(errmsg.FormatWith(errmsg.OpBundleWrite, name, err))
				}
			}
			entries = append(entries, report.Entry{
				Path:     path,
				Name:     name,
				Kind:     f.Kind,
				Size:     f.Size(),
				Subsongs: splitter.Subsongs(title, name, f.Data, f.Bundle),
			})
		}
	}
	return entries
}

// collect returns the songs under root, or root itself when it is a file.
func collect(root string) []string {
	info, err := os.Stat(root)
	if err != nil {
		log.Print(errmsg.FormatWith(errmsg.OpFileLoad, root, err))
		return nil
	}
	if !info.IsDir() {
		return []string{root}
	}

	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if _, _, ok := scan.Classify(relative(root, path)); ok {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// scanCached runs a scan through the sqlite cache and returns every cached
// result under paths.
func scanCached(opts options, cfg *config.Config, title string, splitter *catalog.Splitter, paths []string) ([]report.Entry, error) {
	store, err := state.Open(cfg.DBPath)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpCacheOpen, err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc := &scan.Scanner{
		Store:    store,
		Splitter: splitter,
		Title:    title,
		Samples:  cfg.SamplesOverrides(),
		Workers:  cfg.GetWorkers(),
		Force:    opts.force,
	}

	progress := make(chan scan.Progress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			if p.Phase == scan.PhaseProcessing && p.Total > 0 {
				log.Printf("%s %d/%d", p.Phase, p.Current, p.Total)
			}
		}
	}()

	stats, err := sc.Run(ctx, paths, progress)
	<-done
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpScan, err))
	}
	fmt.Fprintln(os.Stderr, scanreport.Render(stats, scanreport.DefaultMaxExamples))

	assets, err := store.Assets()
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpCacheLoad, err))
	}

	var entries []report.Entry
	for _, a := range assets {
		root, ok := rootOf(a.Path, paths)
		if !ok {
			continue
		}
		_, name, _ := scan.Classify(relative(root, a.Path))
		entries = append(entries, report.Entry{
			Path:     a.Path,
			Name:     name,
			Kind:     a.Kind,
			Size:     a.Size,
			Subsongs: a.Subsongs,
		})
	}
	return entries, nil
}

func rootOf(path string, roots []string) (string, bool) {
	for _, root := range roots {
		if strings.HasPrefix(path, root) {
			return root, true
		}
	}
	return "", false
}

func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return filepath.Base(path)
	}
	return rel
}

func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
