// Package theme locates page templates. Themes are exposed by providers; the
// registry resolves a theme name across all providers and refuses to pick a
// winner when two providers expose the same name.
package theme

import (
	"io/fs"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Provider exposes a set of named themes.
type Provider interface {
	Name() string
	Themes() (map[string]fs.FS, error)
}

// Registry resolves theme names across providers in registration order.
type Registry struct {
	providers []Provider
}

// NewRegistry returns a registry holding the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds a provider. Nil providers are ignored.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.providers = append(r.providers, p)
}

type candidate struct {
	provider string
	fsys     fs.FS
}

func (r *Registry) index() (map[string][]candidate, error) {
	idx := make(map[string][]candidate)
	for _, p := range r.providers {
		themes, err := p.Themes()
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryTheme, "list themes").
				WithContext("provider", p.Name()).
				Build()
		}
		for name, fsys := range themes {
			idx[name] = append(idx[name], candidate{provider: p.Name(), fsys: fsys})
		}
	}
	return idx, nil
}

// Names returns every theme name, sorted. A name exposed by more than one
// provider is reported as a configuration error with reason "duplicate".
func (r *Registry) Names() ([]string, error) {
	idx, err := r.index()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if len(idx[name]) > 1 {
			return names, duplicateError(name, idx[name])
		}
	}
	return names, nil
}

// Open returns the file tree of the named theme.
func (r *Registry) Open(name string) (fs.FS, error) {
	idx, err := r.index()
	if err != nil {
		return nil, err
	}

	found := idx[name]
	switch len(found) {
	case 0:
		return nil, errors.ConfigurationError("unrecognized theme").
			WithContext(errors.ContextReason, errors.ReasonMissing).
			WithContext("theme", name).
			Build()
	case 1:
		return found[0].fsys, nil
	default:
		return nil, duplicateError(name, found)
	}
}

func duplicateError(name string, found []candidate) error {
	providers := make([]string, 0, len(found))
	for _, c := range found {
		providers = append(providers, c.provider)
	}
	return errors.ConfigurationError("theme name is exposed by more than one provider").
		WithContext(errors.ContextReason, errors.ReasonDuplicate).
		WithContext("theme", name).
		WithContext("providers", strings.Join(providers, ",")).
		Build()
}
