// Package backoffice holds the admin list pages: fetch with a server-side status filter,
// client-side search, a detail selection and row actions guarded by a single busy id.
package backoffice

import (
	"context"
	"errors"
	"fmt"
	"homestay/infras/otel"
	"homestay/shared/constant"
	"homestay/shared/dto"
	"sync"

	"github.com/rs/zerolog/log"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

var (
	// ErrBusy is returned when an action is attempted while another one is in flight.
	ErrBusy = errors.New("another action is in progress")
	// ErrDeclined is returned when the confirmer refused a destructive action.
	ErrDeclined          = errors.New("action declined")
	ErrUnknownAction     = errors.New("unknown action")
	ErrSuperseded        = errors.New("fetch superseded by a newer one")
	errFetchNotAvailable = errors.New("page has no fetcher")
)

// Confirmer asks the operator before destructive actions run.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Action is a row operation. A non-empty Confirm prompt marks it destructive.
type Action[T any] struct {
	Name    string
	Confirm string
	Run     func(ctx context.Context, id string) error
	// Patch updates the open detail in place after success.
	Patch func(T) T
	// Removes clears the open detail after success.
	Removes bool
}

type Config[T any] struct {
	Entity  string
	Fetch   func(ctx context.Context, params dto.ListParams) ([]T, error)
	ID      func(T) string
	Search  func(T) []string
	Actions []Action[T]
}

type Page[T any] struct {
	cfg       Config[T]
	actions   map[string]Action[T]
	confirmer Confirmer
	otel      otel.Otel

	mu       sync.Mutex
	state    State
	err      error
	items    []T
	params   dto.ListParams
	query    string
	filter   func(T) bool
	selected *T
	busy     string
	seq      uint64
	cancel   context.CancelFunc
}

func NewPage[T any](cfg Config[T], confirmer Confirmer, otel otel.Otel) *Page[T] {
	actions := make(map[string]Action[T], len(cfg.Actions))
	for _, action := range cfg.Actions {
		actions[action.Name] = action
	}

	return &Page[T]{
		cfg:       cfg,
		actions:   actions,
		confirmer: confirmer,
		otel:      otel,
		params: dto.ListParams{
			Page:  constant.DefaultValuePage,
			Limit: constant.DefaultValueLimit,
		},
	}
}

// Load refetches the list with the current params. A newer Load cancels this one; a
// superseded fetch is discarded and reported as ErrSuperseded.
func (p *Page[T]) Load(ctx context.Context) error {
	if p.cfg.Fetch == nil {
		return errFetchNotAvailable
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	p.seq++
	seq := p.seq
	p.cancel = cancel
	p.state = StateLoading
	params := p.params
	p.mu.Unlock()

	items, err := p.cfg.Fetch(ctx, params)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq {
		return ErrSuperseded
	}

	cancel()
	p.cancel = nil

	if err != nil {
		p.state = StateErrored
		p.err = err

		log.Error().Err(err).Str("entity", p.cfg.Entity).Msg("failed to load list")

		return err
	}

	p.state = StateLoaded
	p.err = nil
	p.items = items

	return nil
}

// SetStatus changes the server-side status filter and refetches. "all" clears it.
func (p *Page[T]) SetStatus(ctx context.Context, status string) error {
	p.mu.Lock()
	p.params.Status = dto.NormalizeStatus(status)
	p.mu.Unlock()

	return p.Load(ctx)
}

func (p *Page[T]) SetPage(ctx context.Context, page int) error {
	p.mu.Lock()
	p.params.Page = max(page, 1)
	p.mu.Unlock()

	return p.Load(ctx)
}

// SetSearch filters the fetched rows locally. It never refetches.
func (p *Page[T]) SetSearch(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.query = query
}

// SetFilter adds a client-side predicate on top of search. nil removes it.
func (p *Page[T]) SetFilter(keep func(T) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filter = keep
}

// Visible is the fetched page after search and filter.
func (p *Page[T]) Visible() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible := Search(p.items, p.query, p.cfg.Search)
	if p.filter == nil {
		return visible
	}

	kept := make([]T, 0, len(visible))

	for _, item := range visible {
		if p.filter(item) {
			kept = append(kept, item)
		}
	}

	return kept
}

// Items is the fetched page, unfiltered.
func (p *Page[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]T(nil), p.items...)
}

func (p *Page[T]) Select(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, item := range p.items {
		if p.cfg.ID(item) == id {
			selected := item
			p.selected = &selected

			return true
		}
	}

	return false
}

func (p *Page[T]) Selected() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.selected == nil {
		var zero T

		return zero, false
	}

	return *p.selected, true
}

func (p *Page[T]) CloseDetail() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selected = nil
}

func (p *Page[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *Page[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

func (p *Page[T]) Params() dto.ListParams {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.params
}

// Busy is the id of the row whose action is in flight, or "".
func (p *Page[T]) Busy() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.busy
}

func (p *Page[T]) Entity() string {
	return p.cfg.Entity
}

func (p *Page[T]) Actions() []string {
	names := make([]string, 0, len(p.cfg.Actions))
	for _, action := range p.cfg.Actions {
		names = append(names, action.Name)
	}

	return names
}

// Confirms reports whether the named action asks before running.
func (p *Page[T]) Confirms(name string) bool {
	action, ok := p.actions[name]

	return ok && action.Confirm != ""
}

// Do runs the named action on id. Only one action may be in flight per page. On success
// the open detail is patched (or closed when the row is gone) and the list is refetched.
func (p *Page[T]) Do(ctx context.Context, name, id string) (err error) {
	action, ok := p.actions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+"."+p.cfg.Entity+"."+name)
	defer scope.End()
	defer func() {
		if !errors.Is(err, ErrBusy) && !errors.Is(err, ErrDeclined) {
			scope.TraceIfError(err)
		}
	}()

	p.mu.Lock()
	if p.busy != "" {
		p.mu.Unlock()

		return ErrBusy
	}

	p.busy = id
	p.mu.Unlock()

	// the slot is held while the operator answers
	if action.Confirm != "" && (p.confirmer == nil || !p.confirmer.Confirm(action.Confirm)) {
		p.mu.Lock()
		p.busy = ""
		p.mu.Unlock()

		return ErrDeclined
	}

	err = action.Run(ctx, id)

	p.mu.Lock()
	p.busy = ""

	if err == nil {
		p.patchSelected(action, id)
	}
	p.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Str("entity", p.cfg.Entity).Str("action", name).Str("id", id).Msg("action failed")

		return err
	}

	log.Debug().Str("entity", p.cfg.Entity).Str("action", name).Str("id", id).Msg("action completed")

	if err = p.Load(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
		return err
	}

	return nil
}

func (p *Page[T]) patchSelected(action Action[T], id string) {
	if p.selected == nil || p.cfg.ID(*p.selected) != id {
		return
	}

	switch {
	case action.Removes:
		p.selected = nil
	case action.Patch != nil:
		patched := action.Patch(*p.selected)
		p.selected = &patched
	}
}
