// Package filter turns request payloads into query predicates on a
// model's query builder.
package filter

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Definition describes how one model is filtered. It is configured
// through options and the Register methods, and becomes read only at
// the first Apply. A sealed Definition is safe for concurrent use.
type Definition[T any] struct {
	factory Factory[T]

	fields        []string
	casts         map[string]CastType
	exclude       map[string]struct{}
	withDeletions bool

	overrides      map[string]HandlerFunc[T]
	arrayOverrides map[string]HandlerFunc[T]
	callbacks      []*callback[T]
	handlers       []*handlerEntry[T]

	firstCallbackOnly bool
	logger            zerolog.Logger
	// cast names from config that did not parse, logged once options are applied
	unknownCasts map[string]string

	mu     sync.Mutex
	sealed atomic.Bool
}

type Option[T any] func(d *Definition[T]) error

// New creates a Definition. A nil factory is reported by Apply.
func New[T any](factory Factory[T], opts ...Option[T]) (*Definition[T], error) {
	d := &Definition[T]{
		factory:        factory,
		casts:          make(map[string]CastType, 4),
		exclude:        make(map[string]struct{}, 4),
		overrides:      make(map[string]HandlerFunc[T], 4),
		arrayOverrides: make(map[string]HandlerFunc[T], 4),
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	for field, name := range d.unknownCasts {
		d.logger.Warn().Str("field", field).Str("cast", name).Msg("filter: unknown cast ignored")
	}
	d.unknownCasts = nil
	return d, nil
}

// Fields appends to the whitelist. Duplicates keep their first position.
func Fields[T any](fields ...string) Option[T] {
	return func(d *Definition[T]) error {
		d.addFields(fields)
		return nil
	}
}

func Cast[T any](field string, c CastType) Option[T] {
	return func(d *Definition[T]) error {
		d.casts[field] = c
		return nil
	}
}

func Casts[T any](casts map[string]CastType) Option[T] {
	return func(d *Definition[T]) error {
		for f, c := range casts {
			d.casts[f] = c
		}
		return nil
	}
}

// Exclude keeps fields out of the default pass only.
func Exclude[T any](fields ...string) Option[T] {
	return func(d *Definition[T]) error {
		for _, f := range fields {
			d.exclude[f] = struct{}{}
		}
		return nil
	}
}

func WithDeletions[T any]() Option[T] {
	return func(d *Definition[T]) error {
		d.withDeletions = true
		return nil
	}
}

// Override replaces the default predicate of a whitelisted field for
// scalar values.
func Override[T any](field string, fn HandlerFunc[T]) Option[T] {
	return func(d *Definition[T]) error {
		if fn == nil {
			return ErrNilHandler
		}
		d.overrides[field] = fn
		return nil
	}
}

// ArrayOverride is Override for list values.
func ArrayOverride[T any](field string, fn HandlerFunc[T]) Option[T] {
	return func(d *Definition[T]) error {
		if fn == nil {
			return ErrNilHandler
		}
		d.arrayOverrides[field] = fn
		return nil
	}
}

func Callback[T any](field string, scalar, collection HandlerFunc[T]) Option[T] {
	return func(d *Definition[T]) error {
		return d.addCallback(field, scalar, collection)
	}
}

func HandlerObject[T any](field string, h Handler[T]) Option[T] {
	return func(d *Definition[T]) error {
		return d.addHandler(field, h)
	}
}

func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(d *Definition[T]) error {
		d.logger = logger
		return nil
	}
}

// FirstCallbackOnly stops the callback pass after the first callback
// that claims a field.
func FirstCallbackOnly[T any]() Option[T] {
	return func(d *Definition[T]) error {
		d.firstCallbackOnly = true
		return nil
	}
}

func WithConfig[T any](cfg Config) Option[T] {
	return func(d *Definition[T]) error {
		d.addFields(cfg.Fields)
		for field, name := range cfg.Casts {
			c, ok := ParseCastType(name)
			if !ok {
				if d.unknownCasts == nil {
					d.unknownCasts = make(map[string]string, 1)
				}
				d.unknownCasts[field] = name
			}
			d.casts[field] = c
		}
		for _, f := range cfg.Exclude {
			d.exclude[f] = struct{}{}
		}
		if cfg.WithDeletions {
			d.withDeletions = true
		}
		return nil
	}
}

// RegisterCallback adds a named callback pair. collection may be nil,
// lists then get the default IN predicate. Registering a field again
// replaces its functions and keeps its position.
func (d *Definition[T]) RegisterCallback(field string, scalar, collection HandlerFunc[T]) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sealed.Load() {
		return ErrSealed
	}
	return d.addCallback(field, scalar, collection)
}

// RegisterHandler adds a handler object, last write wins.
func (d *Definition[T]) RegisterHandler(field string, h Handler[T]) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sealed.Load() {
		return ErrSealed
	}
	return d.addHandler(field, h)
}

func (d *Definition[T]) addFields(fields []string) {
	for _, f := range fields {
		if d.isField(f) {
			continue
		}
		d.fields = append(d.fields, f)
	}
}

func (d *Definition[T]) isField(field string) bool {
	for _, f := range d.fields {
		if f == field {
			return true
		}
	}
	return false
}

func (d *Definition[T]) addCallback(field string, scalar, collection HandlerFunc[T]) error {
	if scalar == nil {
		return ErrNilHandler
	}
	for _, cb := range d.callbacks {
		if cb.field == field {
			cb.scalar, cb.collection = scalar, collection
			return nil
		}
	}
	d.callbacks = append(d.callbacks, &callback[T]{
		field:      field,
		scalar:     scalar,
		collection: collection,
	})
	return nil
}

func (d *Definition[T]) addHandler(field string, h Handler[T]) error {
	if h == nil {
		return ErrNilHandler
	}
	if hf, ok := h.(HandlerFuncs[T]); ok && (hf.Scalar == nil || hf.Collection == nil) {
		return ErrNilHandler
	}
	for _, e := range d.handlers {
		if e.field == field {
			e.h = h
			return nil
		}
	}
	d.handlers = append(d.handlers, &handlerEntry[T]{field: field, h: h})
	return nil
}

// seal makes the registries read only. Readers after seal need no lock,
// every write happened under mu before sealed was set.
func (d *Definition[T]) seal() {
	if d.sealed.Load() {
		return
	}
	d.mu.Lock()
	d.sealed.Store(true)
	d.mu.Unlock()
}

// Fields returns the whitelist in declaration order.
func (d *Definition[T]) Fields() []string {
	res := make([]string, len(d.fields))
	copy(res, d.fields)
	return res
}

// CastOf returns the cast of field, CastNone when there is none.
func (d *Definition[T]) CastOf(field string) CastType {
	return d.casts[field]
}

func (d *Definition[T]) Excluded(field string) bool {
	_, ok := d.exclude[field]
	return ok
}

func (d *Definition[T]) WithDeletions() bool {
	return d.withDeletions
}
