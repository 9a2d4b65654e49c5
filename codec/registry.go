package codec

import (
	"sync"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/internal/hash"
)

// Registry caches a textual type descriptor to the Codec built for it.
// The zero Registry is not usable; use NewRegistry or the package-level
// Default registry most callers want.
//
// Lookups are keyed by a 64-bit xxHash of the type string (internal/hash).
// Since a hash can theoretically collide across two different type
// strings, each bucket keeps every (string, Codec) pair that has hashed
// to it so far and a lookup confirms an exact string match before
// reusing a cached codec. The hash narrows the search; it never
// substitutes for the real key.
type Registry struct {
	mu      sync.RWMutex
	buckets map[uint64][]entry
}

type entry struct {
	typeStr string
	codec   Codec
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{buckets: make(map[uint64][]entry)}
}

// Default is the process-wide registry used by the package-level Get.
// A fresh Registry is only needed for tests that
// want isolation from other tests' cached codecs.
var Default = NewRegistry()

// Get returns the Codec for typeStr, building and caching it on first
// reference. Construction runs without the lock held (composite builders
// call back into Get for their children); insertion is serialized by the
// registry's mutex, and if two goroutines build the same type at once
// only the first inserted codec is kept and returned to both, so the
// registry never hands two distinct callers two different Codec
// instances for the same textual type.
func (r *Registry) Get(typeStr string) (Codec, error) {
	h := hash.ID(typeStr)

	r.mu.RLock()
	for _, e := range r.buckets[h] {
		if e.typeStr == typeStr {
			r.mu.RUnlock()

			return e.codec, nil
		}
	}
	r.mu.RUnlock()

	node, err := chtype.Parse(typeStr)
	if err != nil {
		return nil, err
	}

	c, err := build(r, node)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have built and
	// inserted it while this one was building.
	for _, e := range r.buckets[h] {
		if e.typeStr == typeStr {
			return e.codec, nil
		}
	}

	r.buckets[h] = append(r.buckets[h], entry{typeStr: typeStr, codec: c})

	return c, nil
}

// Get looks up typeStr in the Default registry.
func Get(typeStr string) (Codec, error) {
	return Default.Get(typeStr)
}

// build constructs a Codec for a parsed type node, dispatching by
// name/prefix. Composite codecs recurse through r.Get (or buildChild for
// inline aliases) so their children share the same process-wide cache.
func build(r *Registry, n chtype.Node) (Codec, error) {
	if c, ok := scalarCodecs[n.Name]; ok {
		return c, nil
	}

	switch n.Name {
	case "Nullable":
		return buildNullable(r, n)
	case "LowCardinality":
		// RowBinary transport never carries LowCardinality's dictionary;
		// the wire layout is identical to the inner type; dispatch is
		// transparent pass-through.
		return buildChild(r, n)
	case "Array":
		return buildArray(r, n)
	case "Nested":
		return buildNested(r, n)
	case "Map":
		return buildMap(r, n)
	case "Tuple":
		return buildTuple(r, n)
	case "FixedString":
		return buildFixedString(n)
	case "DateTime64":
		return buildDateTime64(n)
	case "Decimal", "Decimal32", "Decimal64", "Decimal128", "Decimal256":
		return buildDecimal(n)
	case "Enum8":
		return &int8Codec{base: base{typeName: n.Raw}}, nil
	case "Enum16":
		return &int16Codec{base: base{typeName: n.Raw}}, nil
	case "JSON":
		return buildJSON(r, n)
	case "Object":
		return buildObject(r, n)
	case "Dynamic":
		return buildDynamic(r, n)
	case "Variant":
		return buildVariant(r, n)
	case "Point":
		return r.Get("Tuple(Float64, Float64)")
	case "Ring":
		return r.Get("Array(Point)")
	case "Polygon":
		return r.Get("Array(Ring)")
	case "MultiPolygon":
		return r.Get("Array(Polygon)")
	}

	return nil, errs.NewTypeError("dispatch", n.Raw, errs.ErrUnsupportedType)
}

// buildChild builds (or fetches from cache) the codec for a single-child
// parametric type's inner type, e.g. Nullable(T) or LowCardinality(T).
func buildChild(r *Registry, n chtype.Node) (Codec, error) {
	if len(n.Args) != 1 {
		return nil, errs.NewTypeError("dispatch", n.Raw, errs.ErrUnsupportedType)
	}

	return r.Get(n.Args[0].String())
}
