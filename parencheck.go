// Package parencheck reports unbalanced parentheses in the script blocks of
// text documents.
//
// Check works on a loaded scanner.Document; CheckFile and CheckPaths load
// documents first and never report anything when a read fails.
package parencheck

import (
	"context"
	"crypto/sha256"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vippsas/parencheck/scanner"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency is the number of documents scanned at once.
	DefaultConcurrency = 4
	// DefaultFile is checked when no path is given.
	DefaultFile = "quiz.html"
)

// DefaultExtensions are the files picked up when a directory is checked.
var DefaultExtensions = []string{".html", ".htm"}

// Options configures a check. The zero value checks the first
// <script> block as JavaScript.
type Options struct {
	Markers         scanner.Markers
	Dialect         scanner.Dialect
	AllRegions      bool
	RangeOfInterest Range
	MaxUnclosed     int

	// Extensions filters the files found when walking a directory. Files
	// named explicitly are always checked.
	Extensions  []string
	Concurrency int

	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Markers.Start == nil || o.Markers.End == nil {
		o.Markers = scanner.DefaultMarkers()
	}
	if o.Dialect.Name == "" {
		o.Dialect = scanner.JavaScript
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Concurrency < 1 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.Logger = logger
	}
	return o
}

// Check scans doc and builds its report.
func Check(doc *scanner.Document, opts Options) Report {
	opts = opts.withDefaults()
	log := opts.Logger.WithField("file", doc.File)

	regions := scanner.FindRegions(doc, opts.Markers, opts.AllRegions)
	if len(regions) == 0 {
		log.Debug("no region found")
	}

	results := scanner.NewScanner(doc, opts.Dialect).Scan(regions)
	for _, res := range results {
		log.WithFields(logrus.Fields{
			"region":            res.Region.Index,
			"start":             res.Region.Start,
			"stop":              res.Region.Stop,
			"lines":             res.Lines,
			"comments":          res.CommentLines,
			"unexpected_closes": len(res.UnexpectedCloses()),
			"unclosed_opens":    len(res.UnclosedOpens()),
		}).Debug("scanned region")
	}

	return NewReport(doc, results, ReportOptions{
		RangeOfInterest: opts.RangeOfInterest,
		MaxUnclosed:     opts.MaxUnclosed,
	})
}

// CheckFile loads name from fsys and checks it.
func CheckFile(fsys fs.FS, name string, opts Options) (Report, error) {
	doc, err := scanner.Load(fsys, name, scanner.FileRef(name))
	if err != nil {
		return Report{}, SourceReadError{Path: name, Err: err}
	}
	return Check(doc, opts), nil
}

// CheckPaths checks files and directories on disk. Every document is loaded
// before anything is scanned, so a single unreadable path fails the whole
// call. Reports come back in the order the documents were found.
func CheckPaths(ctx context.Context, opts Options, paths ...string) ([]Report, error) {
	opts = opts.withDefaults()

	docs, err := LoadPaths(opts, paths...)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = Check(doc, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// LoadPaths reads every file named in paths, walking directories for files
// with one of opts.Extensions. Hidden files and directories met during a
// walk are skipped, and a file with the same contents as one already loaded
// is dropped with a warning.
func LoadPaths(opts Options, paths ...string) ([]*scanner.Document, error) {
	opts = opts.withDefaults()

	var docs []*scanner.Document
	hashes := make(map[[32]byte]string)
	add := func(doc *scanner.Document, buf []byte) {
		hash := sha256.Sum256(buf)
		if existing, ok := hashes[hash]; ok {
			opts.Logger.WithFields(logrus.Fields{
				"file":      doc.File,
				"duplicate": existing,
			}).Warn("skipping file with the same contents as another")
			return
		}
		hashes[hash] = string(doc.File)
		docs = append(docs, doc)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, SourceReadError{Path: p, Err: err}
		}
		if !info.IsDir() {
			buf, err := os.ReadFile(p)
			if err != nil {
				return nil, SourceReadError{Path: p, Err: err}
			}
			add(scanner.ParseString(scanner.FileRef(p), string(buf)), buf)
			continue
		}

		fsys := os.DirFS(p)
		// WalkDir is in lexical order, so the output is stable
		err = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return SourceReadError{Path: filepath.Join(p, filepath.FromSlash(name)), Err: err}
			}
			if name != "." && strings.HasPrefix(path.Base(name), ".") {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !hasExtension(name, opts.Extensions) {
				return nil
			}
			full := filepath.Join(p, filepath.FromSlash(name))
			buf, err := fs.ReadFile(fsys, name)
			if err != nil {
				return SourceReadError{Path: full, Err: err}
			}
			add(scanner.ParseString(scanner.FileRef(full), string(buf)), buf)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	opts.Logger.WithField("files", len(docs)).Debug("loaded documents")
	return docs, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Summary bundles the reports of one run.
type Summary struct {
	Files   int      `json:"files" yaml:"files" toml:"files"`
	Errors  int      `json:"errors" yaml:"errors" toml:"errors"`
	Reports []Report `json:"reports" yaml:"reports" toml:"reports"`
}

// Summarize totals the findings of reports.
func Summarize(reports []Report) Summary {
	s := Summary{Files: len(reports), Reports: reports}
	for _, r := range reports {
		s.Errors += r.ErrorCount()
	}
	return s
}

// Imbalance returns an ImbalanceError when any report has findings.
func (s Summary) Imbalance() error {
	var files int
	for _, r := range s.Reports {
		if !r.Clean() {
			files++
		}
	}
	if files == 0 {
		return nil
	}
	return ImbalanceError{Files: files, Errors: s.Errors}
}
