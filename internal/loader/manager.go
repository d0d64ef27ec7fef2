package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/lex"
	"github.com/ParapluOU/whale-schema/internal/parse"
	"github.com/ParapluOU/whale-schema/internal/source"
	"github.com/ParapluOU/whale-schema/location"
)

// Unit is one parsed source file: its identity and the Model the parser
// produced from it. A Unit is always non-nil once returned, even when its
// Model carries parse errors; callers must inspect the accompanying
// diag.Result before trusting it for compilation.
type Unit struct {
	Source location.SourceID
	Model  *ast.Model
}

// Manager loads a WHAS source file and every file it transitively imports,
// memoizing by canonical source identity so a file imported from multiple
// places is only ever read and parsed once, and so import cycles
// short-circuit instead of recursing forever.
type Manager struct {
	cfg       *config
	registry  *source.Registry
	collector *diag.Collector
	logger    *slog.Logger

	mu      sync.Mutex
	units   map[location.SourceID]*Unit
	loading map[location.SourceID]bool

	root     *os.Root // sandboxes import reads to the entry file's directory tree
	rootPath string
}

// NewManager constructs a Manager. The returned Manager is single-use: call
// Load or LoadString exactly once per instance, since loading mutates
// shared memoization and diagnostic state.
func NewManager(opts ...Option) *Manager {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	reg := cfg.sourceRegistry
	if reg == nil {
		reg = source.NewRegistry()
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Manager{
		cfg:       cfg,
		registry:  reg,
		collector: diag.NewCollector(cfg.issueLimit),
		logger:    logger,
		units:     make(map[location.SourceID]*Unit),
		loading:   make(map[location.SourceID]bool),
	}
}

// Close releases the sandboxed root handle, if one was opened.
func (m *Manager) Close() error {
	if m.root != nil {
		return m.root.Close()
	}
	return nil
}

// Load reads path from the filesystem, parses it, and recursively resolves
// every import it (and its imports, transitively) declares. The returned
// Unit is the entry file's; Units() exposes every file reached along the
// way. ctx must not be nil.
func (m *Manager) Load(ctx context.Context, path string) (*Unit, diag.Result, error) {
	if ctx == nil {
		panic("loader.Manager.Load: context must not be nil")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("resolve path %q: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	root, err := os.OpenRoot(filepath.Dir(absPath))
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("open module root for %q: %w", absPath, err)
	}
	m.root = root
	m.rootPath = filepath.Dir(absPath)

	content, resolvedPath, err := readWithSuffixRetry(absPath, os.ReadFile)
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("%q not found (tried with and without .whas suffix): %w", path, err)
	}
	absPath = resolvedPath

	sourceID, err := location.SourceIDFromAbsolutePath(absPath)
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("invalid source path %q: %w", absPath, err)
	}

	unit, err := m.loadSource(ctx, sourceID, content)
	if err != nil {
		return nil, m.collector.Result(), err
	}
	return unit, m.collector.Result(), nil
}

// LoadString parses sourceCode as if it were a file named sourceName,
// without touching the filesystem. Import declarations within it are
// reported as unresolved (E_IMPORT_RESOLVE), since there is no directory to
// resolve them against. ctx must not be nil.
func (m *Manager) LoadString(ctx context.Context, sourceCode, sourceName string) (*Unit, diag.Result, error) {
	if ctx == nil {
		panic("loader.Manager.LoadString: context must not be nil")
	}
	sourceID := location.NewSourceID("string://" + sourceName)
	unit, err := m.loadSource(ctx, sourceID, []byte(sourceCode))
	if err != nil {
		return nil, m.collector.Result(), err
	}
	return unit, m.collector.Result(), nil
}

// Units returns every source unit reached so far, entry file and imports
// alike, keyed by canonical source identity.
func (m *Manager) Units() map[location.SourceID]*Unit {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[location.SourceID]*Unit, len(m.units))
	for k, v := range m.units {
		out[k] = v
	}
	return out
}

func (m *Manager) loadSource(ctx context.Context, sourceID location.SourceID, content []byte) (*Unit, error) {
	m.mu.Lock()
	if existing, ok := m.units[sourceID]; ok {
		if m.loading[sourceID] {
			// Memoized but still walking its own imports: this source was
			// reached again through one of them, a genuine import cycle
			// (diamond sharing finds the unit finished and loading unset).
			m.collector.Collect(diag.NewIssue(diag.Info, diag.I_IMPORT_CYCLE_TOLERATED,
				fmt.Sprintf("import cycle detected and tolerated at %s", sourceID)).Build())
		}
		m.mu.Unlock()
		return existing, nil
	}
	if m.loading[sourceID] {
		// Reached again while still being lexed and parsed, before it was
		// memoized. Tolerated like a cycle: report and treat as "no further
		// content to contribute from here", not a failure.
		m.collector.Collect(diag.NewIssue(diag.Info, diag.I_IMPORT_CYCLE_TOLERATED,
			fmt.Sprintf("import cycle detected and tolerated at %s", sourceID)).Build())
		m.mu.Unlock()
		return &Unit{Source: sourceID, Model: &ast.Model{Source: sourceID}}, nil
	}
	m.loading[sourceID] = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.loading, sourceID)
		m.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	if err := m.registry.Register(sourceID, content); err != nil {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_INTERNAL,
			fmt.Sprintf("register source %s: %v", sourceID, err)).Build())
		return nil, nil
	}

	tokens, lexResult := lex.New(sourceID, string(content)).Tokenize()
	for issue := range lexResult.Issues() {
		m.collector.Collect(issue)
	}
	model, parseResult := parse.Parse(sourceID, tokens)
	for issue := range parseResult.Issues() {
		m.collector.Collect(issue)
	}

	unit := &Unit{Source: sourceID, Model: model}

	// Insert before recursing into imports: this is the memoization step
	// that makes a cycle resolve to the m.units lookup above instead of an
	// unbounded recursion.
	m.mu.Lock()
	m.units[sourceID] = unit
	m.mu.Unlock()

	for _, imp := range model.Imports {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load cancelled: %w", err)
		}
		m.loadImport(ctx, sourceID, imp)
	}

	return unit, nil
}

// loadImport resolves and loads the file(s) named by a single import
// declaration, which may expand to more than one file when the path
// contains glob metacharacters.
func (m *Manager) loadImport(ctx context.Context, fromSource location.SourceID, imp *ast.ImportDecl) {
	dir, ok := m.sourceDir(fromSource)
	if !ok {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
			"cannot resolve a relative import from a non-file source").
			WithSpan(imp.Span).Build())
		return
	}

	if imp.IsGlob() {
		m.loadGlobImport(ctx, dir, imp)
		return
	}

	content, absPath, err := m.resolveAndReadImport(dir, imp.Path)
	if err != nil {
		m.reportReadError(imp, absPath, err)
		return
	}

	importSourceID, err := location.SourceIDFromAbsolutePath(absPath)
	if err != nil {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
			fmt.Sprintf("invalid import path %q: %v", absPath, err)).
			WithSpan(imp.Span).Build())
		return
	}

	if _, err := m.loadSource(ctx, importSourceID, content); err != nil {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
			fmt.Sprintf("import %q failed: %v", imp.Path, err)).
			WithSpan(imp.Span).Build())
	}
}

func (m *Manager) loadGlobImport(ctx context.Context, dir string, imp *ast.ImportDecl) {
	pattern := filepath.Join(dir, imp.Path)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
			fmt.Sprintf("invalid glob import pattern %q: %v", imp.Path, err)).
			WithSpan(imp.Span).Build())
		return
	}
	if len(matches) == 0 {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_GLOB_NO_MATCH,
			fmt.Sprintf("glob import %q matched no files", imp.Path)).
			WithSpan(imp.Span).Build())
		return
	}
	for _, absPath := range matches {
		content, err := m.readFile(absPath)
		if err != nil {
			m.reportReadError(imp, absPath, err)
			continue
		}
		importSourceID, err := location.SourceIDFromAbsolutePath(absPath)
		if err != nil {
			continue
		}
		if _, err := m.loadSource(ctx, importSourceID, content); err != nil {
			m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
				fmt.Sprintf("import %q failed: %v", absPath, err)).
				WithSpan(imp.Span).Build())
		}
	}
}

// resolveAndReadImport resolves a single (non-glob) import path relative to
// dir and reads its content, retrying with a ".whas" suffix when the bare
// path doesn't exist. A path-escape failure is returned immediately without
// attempting the suffix retry, since retrying would not change the
// sandboxing outcome.
func (m *Manager) resolveAndReadImport(dir, path string) ([]byte, string, error) {
	candidate := filepath.Join(dir, path)
	content, resolved, err := readWithSuffixRetry(candidate, m.readFile)
	if err != nil {
		if errors.Is(err, errPathEscape) {
			return nil, resolved, err
		}
		return nil, candidate, fmt.Errorf("%q not found (tried with and without .whas suffix): %w", path, err)
	}
	return content, resolved, nil
}

// readWithSuffixRetry reads path via readFn, retrying with a ".whas" suffix
// appended when the bare path doesn't exist. A path-escape failure is
// returned immediately without attempting the retry, since retrying would
// not change the sandboxing outcome. Used uniformly for both the entry
// (root) file and every import, per spec.md's "resolve path by trying it
// verbatim and then with a .whas suffix".
func readWithSuffixRetry(path string, readFn func(string) ([]byte, error)) ([]byte, string, error) {
	content, err := readFn(path)
	if err == nil {
		return content, path, nil
	}
	if errors.Is(err, errPathEscape) {
		return nil, path, err
	}
	firstErr := err

	if !strings.HasSuffix(path, ".whas") {
		withSuffix := path + ".whas"
		content, err := readFn(withSuffix)
		if err == nil {
			return content, withSuffix, nil
		}
		if errors.Is(err, errPathEscape) {
			return nil, withSuffix, err
		}
	}
	return nil, path, firstErr
}

func (m *Manager) readFile(absPath string) ([]byte, error) {
	if m.root == nil {
		return os.ReadFile(absPath)
	}
	rel, err := m.relativeToRoot(absPath)
	if err != nil {
		return nil, err
	}
	f, err := m.root.Open(rel)
	if err != nil {
		return nil, m.translateRootError(err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (m *Manager) relativeToRoot(absPath string) (string, error) {
	rel, err := filepath.Rel(m.rootPath, absPath)
	if err != nil {
		return "", err
	}
	return rel, nil
}

// translateRootError turns an os.Root path-escape failure into a domain
// error the caller reports as E_PATH_ESCAPE rather than a generic read
// failure.
func (m *Manager) translateRootError(err error) error {
	if errors.Is(err, fs.ErrInvalid) {
		return errPathEscape
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil && strings.Contains(pathErr.Err.Error(), "escapes") {
		return errPathEscape
	}
	return err
}

var errPathEscape = errors.New("import path escapes the entry file's directory tree")

func (m *Manager) reportReadError(imp *ast.ImportDecl, path string, err error) {
	if errors.Is(err, errPathEscape) {
		m.collector.Collect(diag.NewIssue(diag.Error, diag.E_PATH_ESCAPE,
			fmt.Sprintf("import %q escapes the entry file's directory tree", imp.Path)).
			WithSpan(imp.Span).Build())
		return
	}
	m.collector.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_RESOLVE,
		fmt.Sprintf("cannot read import %q: %v", imp.Path, err)).
		WithSpan(imp.Span).Build())
}

// sourceDir returns the absolute directory a source's relative imports are
// resolved against, or false if the source has no filesystem identity
// (e.g. a LoadString source).
func (m *Manager) sourceDir(sourceID location.SourceID) (string, bool) {
	cp, ok := sourceID.CanonicalPath()
	if !ok {
		return "", false
	}
	return cp.Dir().String(), true
}
