package filter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Apply resolves in against a fresh builder. Passes run in a fixed
// order: whitelist, callbacks, handler objects, default predicates.
// A field handled by one pass is skipped by the later ones.
func (d *Definition[T]) Apply(in Input) (*Result[T], error) {
	d.seal()
	if d.factory == nil {
		return nil, ErrNoQueryFactory
	}
	b, err := d.factory()
	if err != nil {
		return nil, fmt.Errorf("filter: create builder: %w", err)
	}
	if b == nil {
		return nil, ErrNoQueryFactory
	}
	r := &resolution[T]{
		def:      d,
		in:       in,
		b:        b,
		resolved: make(map[string]struct{}, in.Len()),
		log:      d.logger,
	}
	if r.log.Debug().Enabled() {
		r.log = r.log.With().Str("resolution", uuid.NewString()).Logger()
	}
	if err = r.run(); err != nil {
		return nil, err
	}
	return &Result[T]{b: b, in: in}, nil
}

type resolution[T any] struct {
	def      *Definition[T]
	in       Input
	b        Builder[T]
	resolved map[string]struct{}
	log      zerolog.Logger
}

func (r *resolution[T]) run() error {
	if r.def.withDeletions {
		r.b.IncludeSoftDeleted()
	}
	passes := []func() error{
		r.whitelistPass,
		r.callbackPass,
		r.handlerPass,
		r.defaultPass,
	}
	for _, pass := range passes {
		if err := pass(); err != nil {
			return err
		}
	}
	r.log.Debug().Int("resolved", len(r.resolved)).Int("input", r.in.Len()).Msg("filter: resolution done")
	return nil
}

func (r *resolution[T]) whitelistPass() error {
	for _, field := range r.def.fields {
		v, ok := r.pending(field)
		if !ok {
			continue
		}
		var fn HandlerFunc[T]
		if v.IsCollection() {
			fn = r.def.arrayOverrides[field]
		} else {
			v = r.coerce(field, v)
			fn = r.def.overrides[field]
		}
		if fn != nil {
			if err := r.call(field, "override", fn, v); err != nil {
				return err
			}
			continue
		}
		if err := r.where(field, "whitelist", v); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolution[T]) callbackPass() error {
	for _, cb := range r.def.callbacks {
		v, ok := r.pending(cb.field)
		if !ok {
			continue
		}
		if !v.IsCollection() {
			if err := r.call(cb.field, "callback", cb.scalar, r.coerce(cb.field, v)); err != nil {
				return err
			}
		} else if cb.collection != nil {
			if err := r.call(cb.field, "callback", cb.collection, v); err != nil {
				return err
			}
		} else if err := r.where(cb.field, "callback", v); err != nil {
			return err
		}
		if r.def.firstCallbackOnly {
			return nil
		}
	}
	return nil
}

func (r *resolution[T]) handlerPass() error {
	for _, e := range r.def.handlers {
		v, ok := r.pending(e.field)
		if !ok {
			continue
		}
		fn := e.h.HandleCollection
		if !v.IsCollection() {
			v = r.coerce(e.field, v)
			fn = e.h.Handle
		}
		if err := r.call(e.field, "handler", fn, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolution[T]) defaultPass() error {
	for _, field := range r.in.keys {
		if _, ok := r.resolved[field]; ok {
			continue
		}
		if r.def.Excluded(field) {
			continue
		}
		v := r.in.values[field]
		if !v.IsCollection() {
			v = r.coerce(field, v)
		}
		if err := r.where(field, "default", v); err != nil {
			return err
		}
	}
	return nil
}

// pending returns the input value of a field nobody handled yet.
func (r *resolution[T]) pending(field string) (Value, bool) {
	if _, ok := r.resolved[field]; ok {
		return Value{}, false
	}
	return r.in.Get(field)
}

func (r *resolution[T]) coerce(field string, v Value) Value {
	if c, ok := r.def.casts[field]; ok {
		return Coerce(v, c)
	}
	return v
}

func (r *resolution[T]) call(field, pass string, fn HandlerFunc[T], v Value) error {
	r.resolved[field] = struct{}{}
	r.log.Debug().Str("field", field).Str("pass", pass).Stringer("value", v).Msg("filter: field handled")
	if err := fn(v, r.b); err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}

// where applies the default predicate: IN for lists, equality otherwise.
// A record made by CastObject compares against its boxed scalar.
func (r *resolution[T]) where(field, pass string, v Value) error {
	r.resolved[field] = struct{}{}
	r.log.Debug().Str("field", field).Str("pass", pass).Stringer("value", v).Msg("filter: default predicate")
	var err error
	switch v.Kind() {
	case KindList:
		err = r.b.WhereIn(field, v.Interfaces())
	case KindRecord:
		sv, _ := v.Field("scalar")
		err = r.b.WhereEquals(field, sv.Interface())
	default:
		err = r.b.WhereEquals(field, v.Interface())
	}
	if err != nil {
		return &FieldError{Field: field, Err: err}
	}
	return nil
}
