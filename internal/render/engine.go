// Package render is the template engine behind every generated page: a
// small mustache-style dialect compiled into a node tree and interpreted
// over a data map. Rendering is pure string interpolation over a fixed
// template set; no markup is ever synthesized at generation time.
package render

import (
	"context"
	"strings"
	"sync"

	"medsite-generator/internal/cache"
	"medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
)

// Template is a compiled, reusable template. Render is deterministic and
// never fails: missing paths produce empty output.
type Template struct {
	nodes []Node
}

// Render interprets the tree against data. Partial references resolve to
// empty output; use Engine.RenderPage when partials are needed.
func (t *Template) Render(data map[string]interface{}) string {
	var sb strings.Builder
	_ = renderNodes(t.nodes, &sb, &scope{data: data}, nil)
	return sb.String()
}

func (t *Template) renderWith(data map[string]interface{}, partials partialResolver) (string, error) {
	var sb strings.Builder
	if err := renderNodes(t.nodes, &sb, &scope{data: data}, partials); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Engine owns the registered template set and the compile cache. Compiled
// trees are keyed by a hash of the source, so identical sources share one
// entry regardless of the name they were registered under.
type Engine struct {
	store  cache.Store
	logger logger.Logger

	mu       sync.RWMutex
	compiled map[string]*Template
	pages    map[string]string
	partials map[string]string
}

// NewEngine builds an engine with the default site template set
// registered. store is the templates cache region and may be nil.
func NewEngine(store cache.Store, log logger.Logger) *Engine {
	e := &Engine{
		store:    store,
		logger:   log.WithFields(map[string]interface{}{"component": "render"}),
		compiled: make(map[string]*Template),
		pages:    make(map[string]string),
		partials: make(map[string]string),
	}
	e.RegisterPage(PageSite, siteTemplate)
	for name, src := range builtinPartials {
		e.RegisterPartial(name, src)
	}
	return e
}

func (e *Engine) RegisterPage(name, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pages[name] = source
}

func (e *Engine) RegisterPartial(name, source string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.partials[name] = source
}

// Compile parses source into a template, consulting the templates region
// first. A region entry whose compiled tree is still in memory skips the
// parse; clearing the region forces recompilation.
func (e *Engine) Compile(ctx context.Context, source string) (*Template, error) {
	key := cache.TemplateKey(source).String()

	if e.cachedEntryValid(ctx, key) {
		e.mu.RLock()
		tpl := e.compiled[key]
		e.mu.RUnlock()
		if tpl != nil {
			return tpl, nil
		}
	}

	nodes, err := parse(source)
	if err != nil {
		return nil, errors.NewTemplateParseFailedError(err)
	}
	tpl := &Template{nodes: nodes}

	e.mu.Lock()
	e.compiled[key] = tpl
	e.mu.Unlock()

	if e.store != nil {
		if err := e.store.Set(ctx, key, []byte(source)); err != nil {
			e.logger.Warn("failed to record compiled template in cache region", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return tpl, nil
}

func (e *Engine) cachedEntryValid(ctx context.Context, key string) bool {
	if e.store == nil {
		e.mu.RLock()
		defer e.mu.RUnlock()
		return e.compiled[key] != nil
	}
	_, found, err := e.store.Get(ctx, key)
	return err == nil && found
}

// RenderPage renders a registered page template with partial resolution.
// This is the only stage of site generation allowed to fail: unknown
// templates and parse errors surface as errors instead of degraded output.
func (e *Engine) RenderPage(ctx context.Context, name string, data map[string]interface{}) (string, error) {
	e.mu.RLock()
	source, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return "", errors.NewTemplateNotFoundError(name)
	}

	tpl, err := e.Compile(ctx, source)
	if err != nil {
		return "", err
	}

	out, err := tpl.renderWith(data, e.partialResolver(ctx))
	if err != nil {
		if _, isStandard := err.(*errors.StandardError); isStandard {
			return "", err
		}
		return "", errors.NewRenderFailedError(err)
	}
	return out, nil
}

func (e *Engine) partialResolver(ctx context.Context) partialResolver {
	return func(name string) (*Template, error) {
		e.mu.RLock()
		source, ok := e.partials[name]
		e.mu.RUnlock()
		if !ok {
			return nil, errors.NewTemplateNotFoundError(name)
		}
		return e.Compile(ctx, source)
	}
}
