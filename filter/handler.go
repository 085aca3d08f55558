package filter

// HandlerFunc applies the predicates of one field to the builder.
type HandlerFunc[T any] func(v Value, b Builder[T]) error

// Handler is a pluggable field handler. Handle gets coerced scalars,
// HandleCollection gets lists as they came in.
type Handler[T any] interface {
	Handle(v Value, b Builder[T]) error
	HandleCollection(v Value, b Builder[T]) error
}

// HandlerFuncs adapts two functions to a Handler. Both are required.
type HandlerFuncs[T any] struct {
	Scalar     HandlerFunc[T]
	Collection HandlerFunc[T]
}

func (h HandlerFuncs[T]) Handle(v Value, b Builder[T]) error {
	return h.Scalar(v, b)
}

func (h HandlerFuncs[T]) HandleCollection(v Value, b Builder[T]) error {
	return h.Collection(v, b)
}

type callback[T any] struct {
	field  string
	scalar HandlerFunc[T]
	// collection may be nil
	collection HandlerFunc[T]
}

type handlerEntry[T any] struct {
	field string
	h     Handler[T]
}
