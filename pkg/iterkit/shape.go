package iterkit

import (
	"iter"
	"reflect"
	"slices"
)

// Iterable is anything that can produce an iteration over its elements.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Sequence is an Iterable with a known length and indexed access.
type Sequence[T any] interface {
	Iterable[T]
	Len() int
	// At returns the element at index i.
	// A negative index counts from the end, so At(-1) is the last element.
	At(i int) T
}

// Reversible is an Iterable that can produce its elements in reverse order.
type Reversible[T any] interface {
	Iterable[T]
	Backward() iter.Seq[T]
}

// Seq is an iter.Seq that satisfies Iterable without advertising any other capability.
type Seq[T any] iter.Seq[T]

func (s Seq[T]) All() iter.Seq[T] { return iter.Seq[T](s) }

// List is a slice that satisfies both Sequence and Reversible.
type List[T any] []T

func (l List[T]) All() iter.Seq[T] { return slices.Values(l) }

func (l List[T]) Len() int { return len(l) }

func (l List[T]) At(i int) T { return l[ResolveIndex(len(l), i)] }

func (l List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l) - 1; 0 <= i; i-- {
			if !yield(l[i]) {
				return
			}
		}
	}
}

// ResolveIndex turns a possibly negative index into an absolute one for a sequence of the given length.
// It does not check the bounds.
func ResolveIndex(length, i int) int {
	if i < 0 {
		return length + i
	}
	return i
}

// Shape tags what an input can do beyond being iterated.
type Shape int

const (
	// ShapeScalar is a value that is not iterable, or treated as atomic.
	ShapeScalar Shape = iota
	ShapeSequence
	ShapeReversible
	ShapeIterable
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeReversible:
		return "reversible"
	case ShapeIterable:
		return "iterable"
	default:
		return "unknown"
	}
}

// ShapeOf classifies a typed iterable.
// Sequence takes precedence over Reversible.
func ShapeOf[T any](src Iterable[T]) Shape {
	switch src.(type) {
	case Sequence[T]:
		return ShapeSequence
	case Reversible[T]:
		return ShapeReversible
	default:
		return ShapeIterable
	}
}

var (
	typeString = reflect.TypeOf("")
	typeBytes  = reflect.TypeOf([]byte(nil))
)

// DefaultBaseTypes are the iterable types that are treated as atomic values by default.
func DefaultBaseTypes() []reflect.Type {
	return []reflect.Type{typeString, typeBytes}
}

// ShapeOfValue classifies an untyped value.
// Values whose type is one of the base types are scalars,
// when no base type is given, DefaultBaseTypes is used.
// Nil pointers are scalars as well.
// Strings, slices and arrays are sequences,
// while maps, receivable channels, iterator functions and Iterable implementations are iterables.
func ShapeOfValue(v any, baseTypes ...reflect.Type) Shape {
	if len(baseTypes) == 0 {
		baseTypes = DefaultBaseTypes()
	}
	return classify(v, baseTypes)
}

func classify(v any, baseTypes []reflect.Type) Shape {
	if v == nil {
		return ShapeScalar
	}
	rt := reflect.TypeOf(v)
	for _, bt := range baseTypes {
		if bt == nil {
			continue
		}
		if isBaseType(rt, bt) {
			return ShapeScalar
		}
	}
	switch rt.Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		return ShapeSequence
	case reflect.Map:
		return ShapeIterable
	case reflect.Chan:
		if rt.ChanDir()&reflect.RecvDir != 0 {
			return ShapeIterable
		}
		return ShapeScalar
	case reflect.Func:
		if isSeqFunc(rt) {
			return ShapeIterable
		}
		return ShapeScalar
	case reflect.Pointer:
		if reflect.ValueOf(v).IsNil() {
			return ShapeScalar
		}
	}
	if _, ok := allMethod(reflect.ValueOf(v)); ok {
		return ShapeIterable
	}
	return ShapeScalar
}

// isBaseType reports whether rt counts as the base type bt.
// Types defined over string or []byte count as their underlying text type.
func isBaseType(rt, bt reflect.Type) bool {
	switch {
	case rt == bt:
		return true
	case bt.Kind() == reflect.Interface:
		return rt.Implements(bt)
	case bt == typeString:
		return rt.Kind() == reflect.String
	case bt == typeBytes:
		return rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
	}
	return false
}

// isSeqFunc reports whether the type has the shape of iter.Seq[X].
func isSeqFunc(rt reflect.Type) bool {
	if rt.Kind() != reflect.Func || rt.NumIn() != 1 || rt.NumOut() != 0 {
		return false
	}
	yield := rt.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func allMethod(rv reflect.Value) (reflect.Value, bool) {
	m := rv.MethodByName("All")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !isSeqFunc(mt.Out(0)) {
		return reflect.Value{}, false
	}
	return m, true
}

// valuesOf iterates one level into a value that is not a scalar.
func valuesOf(v any) iter.Seq[any] {
	switch v := v.(type) {
	case iter.Seq[any]:
		return v
	case func(func(any) bool):
		return v
	}
	return func(yield func(any) bool) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.String:
			for _, r := range rv.String() {
				if !yield(r) {
					return
				}
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		case reflect.Map:
			mr := rv.MapRange()
			for mr.Next() {
				if !yield(mr.Key().Interface()) {
					return
				}
			}
		case reflect.Chan:
			if rv.IsNil() {
				return
			}
			for {
				e, ok := rv.Recv()
				if !ok {
					return
				}
				if !yield(e.Interface()) {
					return
				}
			}
		case reflect.Func:
			callSeqFunc(rv, yield)
		default:
			if rv.Kind() == reflect.Pointer && rv.IsNil() {
				return
			}
			if m, ok := allMethod(rv); ok {
				callSeqFunc(m.Call(nil)[0], yield)
			}
		}
	}
}

func callSeqFunc(fn reflect.Value, yield func(any) bool) {
	if fn.IsNil() {
		return
	}
	yieldType := fn.Type().In(0)
	fn.Call([]reflect.Value{reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
	})})
}
