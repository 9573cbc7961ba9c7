// Package site turns a docs directory into a static site: it discovers the
// sources, builds the navigation tree, renders every page through the theme
// with its links rewritten relative to that page, and copies static files.
package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/fileutil"
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/linkcheck"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

// Stage names used for metrics and logs.
const (
	StageLoad      = "load"
	StageRender    = "render"
	StageAssets    = "assets"
	StageLinkCheck = "linkcheck"
)

// Builder renders a site from a validated configuration.
type Builder struct {
	cfg      *config.Config
	registry *theme.Registry
	recorder metrics.Recorder
	logger   *slog.Logger
	clean    bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry replaces the default theme registry (builtin themes plus
// theme_dir).
func WithRegistry(r *theme.Registry) Option { return func(b *Builder) { b.registry = r } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(b *Builder) { b.recorder = r } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(b *Builder) { b.logger = l } }

// WithClean empties the site directory before writing.
func WithClean(clean bool) Option { return func(b *Builder) { b.clean = clean } }

// NewBuilder returns a builder for cfg.
func NewBuilder(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = DefaultRegistry(cfg)
	}
	return b
}

// DefaultRegistry exposes the builtin themes and, when configured, every
// theme under theme_dir.
func DefaultRegistry(cfg *config.Config) *theme.Registry {
	r := theme.NewRegistry(theme.Builtin{})
	if cfg.ThemeDir != "" {
		r.Register(theme.DirProvider{Root: cfg.ThemeDir})
	}
	return r
}

// Warning is a reference that could not be resolved in non-strict mode.
// The reference was left untouched in the output.
type Warning struct {
	Page      string
	Reference string
	Message   string
}

// Report summarizes a build.
type Report struct {
	BuildID  string
	Pages    int
	Assets   int
	Excluded []string // sources present in docs_dir but absent from the declared nav
	Warnings []Warning
	Broken   []linkcheck.Broken
	Duration time.Duration
	Outcome  metrics.BuildOutcome
}

// Project is the loaded, not yet rendered, state of a docs directory.
type Project struct {
	Files    *Files
	Docs     map[string]*frontmatter.Document
	Tree     *nav.Tree
	Excluded []string
}

// Load discovers the docs directory, parses front matter and builds the
// navigation tree. Pages whose nav entry has no title are named by their
// front matter or their first level-1 heading before falling back to the
// file name.
func (b *Builder) Load(ctx context.Context) (*Project, error) {
	files, err := Discover(b.cfg.DocsDir)
	if err != nil {
		return nil, err
	}
	if len(files.Pages) == 0 {
		return nil, errors.WrapError(ErrNoPages, errors.CategoryBuild, "nothing to build").
			WithContext("path", b.cfg.DocsDir).
			Build()
	}

	docs := make(map[string]*frontmatter.Document, len(files.Pages))
	for _, src := range files.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// #nosec G304 -- src was discovered under docs_dir.
		data, err := os.ReadFile(filepath.Join(b.cfg.DocsDir, filepath.FromSlash(src)))
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "read page source").
				WithContext("page", src).
				Build()
		}
		doc, err := frontmatter.Parse(data)
		if err != nil {
			return nil, errors.BuildError("invalid front matter").
				WithCause(err).
				WithContext("page", src).
				Build()
		}
		docs[src] = doc
	}

	// Front matter title first, then the first level-1 heading.
	mdOpts := b.markdownOptions()
	titles := nav.WithTitles(func(source string) string {
		doc, ok := docs[source]
		if !ok {
			return ""
		}
		if doc.Meta.Title != "" {
			return doc.Meta.Title
		}
		return markdown.Title(doc.Body, mdOpts)
	})

	var tree *nav.Tree
	if len(b.cfg.Nav) > 0 {
		tree, err = nav.FromDeclared(b.cfg.Nav, titles)
	} else {
		tree, err = nav.FromPaths(files.Pages, titles)
	}
	if err != nil {
		return nil, err
	}

	var excluded []string
	for _, p := range tree.Pages() {
		if _, ok := docs[p.Source]; !ok {
			return nil, errors.NotFoundError("nav references a file that is not in docs_dir").
				WithContext(errors.ContextReference, p.Source).
				Build()
		}
	}
	for _, src := range files.Pages {
		if _, err := tree.Lookup(src); err != nil {
			excluded = append(excluded, src)
		}
	}

	return &Project{Files: files, Docs: docs, Tree: tree, Excluded: excluded}, nil
}

// Build renders the site into site_dir.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{BuildID: uuid.NewString()}
	log := b.logger.With(logfields.BuildID(report.BuildID))

	report.Outcome = metrics.OutcomeFailed
	defer func() {
		report.Duration = time.Since(start)
		b.recorder.ObserveBuildDuration(report.Duration)
		b.recorder.IncBuildOutcome(report.Outcome)
	}()

	err := b.build(ctx, log, report)
	switch {
	case err == nil && len(report.Warnings)+len(report.Broken) > 0:
		report.Outcome = metrics.OutcomeWarning
	case err == nil:
		report.Outcome = metrics.OutcomeSuccess
	case ctx.Err() != nil:
		report.Outcome = metrics.OutcomeCanceled
	}
	if err != nil {
		return report, err
	}

	log.Info("Build complete",
		logfields.Count(report.Pages),
		slog.Int("assets", report.Assets),
		slog.Int("warnings", len(report.Warnings)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return report, nil
}

func (b *Builder) build(ctx context.Context, log *slog.Logger, report *Report) error {
	stageStart := time.Now()
	project, err := b.Load(ctx)
	if err != nil {
		return err
	}
	b.recorder.ObserveStageDuration(StageLoad, time.Since(stageStart))
	b.recorder.SetNavPages(project.Tree.Len())
	report.Excluded = project.Excluded
	for _, src := range project.Excluded {
		log.Info("Page not included in nav, skipped", logfields.Page(src))
	}
	for _, src := range project.Files.Ignored {
		log.Debug("Ignoring file with unknown type", logfields.File(src))
	}

	fsys, err := b.registry.Open(b.cfg.Theme)
	if err != nil {
		return err
	}
	th, err := theme.Load(b.cfg.Theme, fsys)
	if err != nil {
		return err
	}
	log.Debug("Theme loaded", logfields.Theme(b.cfg.Theme))

	if b.clean {
		if err := fileutil.CleanDirectory(b.cfg.SiteDir); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "clean site directory").
				WithContext("path", b.cfg.SiteDir).
				Build()
		}
	}

	stageStart = time.Now()
	warnings, err := b.renderAll(ctx, log, th, project)
	report.Warnings = warnings
	if err != nil {
		return err
	}
	report.Pages = project.Tree.Len()
	b.recorder.ObserveStageDuration(StageRender, time.Since(stageStart))

	stageStart = time.Now()
	assets, err := b.copyAssets(ctx, th, project.Files.Assets)
	report.Assets = assets
	b.recorder.AddAssetsCopied(assets)
	if err != nil {
		return err
	}
	b.recorder.ObserveStageDuration(StageAssets, time.Since(stageStart))

	if !b.cfg.LinkCheck {
		return nil
	}
	stageStart = time.Now()
	htmlPaths := make([]string, 0, project.Tree.Len())
	for _, p := range project.Tree.Pages() {
		htmlPaths = append(htmlPaths, p.HTMLPath)
	}
	broken, err := linkcheck.Check(ctx, b.cfg.SiteDir, htmlPaths)
	if err != nil {
		return err
	}
	b.recorder.ObserveStageDuration(StageLinkCheck, time.Since(stageStart))
	report.Broken = broken
	for _, br := range broken {
		log.Warn("Broken link in rendered page",
			logfields.Page(br.Page), logfields.Reference(br.URL), logfields.Path(br.Target))
	}
	if len(broken) > 0 && b.cfg.Strict {
		return errors.BuildError("rendered site contains broken links").
			WithContext(logfields.KeyCount, len(broken)).
			Build()
	}
	return nil
}

func (b *Builder) renderAll(ctx context.Context, log *slog.Logger, th *theme.Theme, project *Project) ([]Warning, error) {
	pages := project.Tree.Pages()

	var (
		mu       sync.Mutex
		warnings []Warning
	)
	render := func(ctx context.Context, p *nav.Page) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, err := b.renderPage(log, th, project.Tree, p, project.Docs[p.Source])
		mu.Lock()
		warnings = append(warnings, w...)
		mu.Unlock()
		return err
	}

	if b.cfg.Build.Concurrency <= 1 {
		for _, p := range pages {
			if err := render(ctx, p); err != nil {
				return warnings, err
			}
		}
		return warnings, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Build.Concurrency)
	for _, p := range pages {
		p := p
		g.Go(func() error { return render(gctx, p) })
	}
	err := g.Wait()

	// Workers finish out of order; report warnings in document order.
	order := make(map[string]int, len(pages))
	for i, p := range pages {
		order[p.Source] = i
	}
	sortWarnings(warnings, order)
	return warnings, err
}

func (b *Builder) copyAssets(ctx context.Context, th *theme.Theme, assets []string) (int, error) {
	statics, err := th.StaticFiles()
	if err != nil {
		return 0, errors.WrapError(err, errors.CategoryTheme, "list theme static files").
			WithContext("theme", th.Name).
			Build()
	}

	copied := 0
	for _, name := range statics {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		dst := filepath.Join(b.cfg.SiteDir, filepath.FromSlash(name))
		if err := fileutil.CopyFromFS(th.FS(), name, dst); err != nil {
			return copied, errors.WrapError(err, errors.CategoryFileSystem, "copy theme file").
				WithContext("file", name).
				Build()
		}
		copied++
	}

	// Docs assets are copied last so they override theme files of the same name.
	for _, rel := range assets {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		src := filepath.Join(b.cfg.DocsDir, filepath.FromSlash(rel))
		dst := filepath.Join(b.cfg.SiteDir, filepath.FromSlash(rel))
		if err := fileutil.CopyFile(src, dst); err != nil {
			return copied, errors.WrapError(err, errors.CategoryFileSystem, "copy asset").
				WithContext("file", rel).
				Build()
		}
		copied++
	}
	return copied, nil
}

// pageError attaches the page to a render failure. Classified causes keep
// their category so exit codes still reflect what went wrong.
func pageError(p *nav.Page, err error) error {
	category := errors.CategoryBuild
	if ce, ok := errors.AsClassified(err); ok {
		category = ce.Category()
	}
	return errors.WrapError(err, category, "render page").
		WithContext("page", p.Source).
		Build()
}

func (b *Builder) markdownOptions() markdown.Options {
	return markdown.Options{GFM: b.cfg.Markdown.GFMEnabled()}
}
