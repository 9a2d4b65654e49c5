package codec

import (
	"fmt"
	"unsafe"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/endian"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/internal/pool"
	"github.com/lithiumdb/chwire/wire"
)

// nativeLittleEndian reports whether the host's native byte order matches
// the wire's (always little-endian). The typed-array fast path blits
// backing bytes directly and is only safe to use when this is true;
// on a big-endian host it falls back to the generic per-element path.
var nativeLittleEndian = endian.IsNativeLittleEndian()

// fixedWidths maps a scalar type name to its wire width in bytes, for the
// set of primitive types the Array fast path blits directly instead of
// dispatching per element.
var fixedWidths = map[string]int{
	"UInt8": 1, "Int8": 1,
	"UInt16": 2, "Int16": 2,
	"UInt32": 4, "Int32": 4,
	"UInt64": 8, "Int64": 8,
	"Float32": 4,
	"Float64": 8,
}

// arrayCodec implements ClickHouse's Array(T): a LEB128 length followed
// by that many encodings of the inner type back to back.
//
// When the inner type is one of fixedWidths, Encode/Decode take a fast
// path that blits the backing bytes of a matching Go slice directly
// instead of dispatching Encode/Decode once per element.
type arrayCodec struct {
	base
	elem     Codec
	elemName string // fixedWidths key, "" if the element type has no fast path
	width    int    // 0 if the element type has no fast path
}

func buildArray(r *Registry, n chtype.Node) (Codec, error) {
	if len(n.Args) != 1 {
		return nil, errs.NewTypeError("Array", n.Raw, errs.ErrUnsupportedType)
	}
	elem, err := r.Get(n.Args[0].String())
	if err != nil {
		return nil, err
	}

	return &arrayCodec{base: base{n.Raw}, elem: elem, elemName: n.Args[0].Name, width: fixedWidths[n.Args[0].Name]}, nil
}

func (c *arrayCodec) Encode(w *wire.Writer, v any) error {
	if c.width > 0 && nativeLittleEndian {
		if raw, n, ok := fastEncodeSlice(v, c.elemName); ok {
			wire.WriteUvarint(w, uint64(n))
			wire.WriteRaw(w, raw)

			return nil
		}
	}

	items, err := toSlice(v)
	if err != nil {
		return err
	}
	wire.WriteUvarint(w, uint64(len(items)))
	for _, item := range items {
		if err := c.elem.Encode(w, item); err != nil {
			return err
		}
	}

	return nil
}

func (c *arrayCodec) Decode(cur *wire.Cursor) (any, error) {
	n, err := wire.ReadUvarint(cur)
	if err != nil {
		return nil, err
	}
	count := int(n)

	if c.width > 0 && nativeLittleEndian {
		raw, err := wire.ReadRaw(cur, count*c.width)
		if err != nil {
			return nil, err
		}

		if !alignedOffset(raw, c.width) {
			return copyIntoAligned(raw, count, c.elemName), nil
		}

		return fastDecodeSlice(raw, count, c.elemName), nil
	}

	out := make([]any, count)
	for i := range count {
		val, err := c.elem.Decode(cur)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}

	return out, nil
}

// toSlice normalizes a value into a generic []any for the non-fast-path
// encode loop. []any is accepted directly; any other slice kind must go
// through the fast path or is rejected.
func toSlice(v any) ([]any, error) {
	switch s := v.(type) {
	case []any:
		return s, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: expected []any (or a matching typed slice for the fast path), got %T", errs.ErrMalformedValue, v)
	}
}

// fastEncodeSlice returns the raw bytes of a Go slice whose element type
// matches elemName, without per-element dispatch. ok is false if v's
// concrete type isn't the one Go slice kind that elemName fast-paths to.
func fastEncodeSlice(v any, elemName string) (raw []byte, n int, ok bool) {
	switch elemName {
	case "UInt8":
		if s, isOK := v.([]uint8); isOK {
			return s, len(s), true
		}
	case "Int8":
		if s, isOK := v.([]int8); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)), len(s), true
		}
	case "UInt16":
		if s, isOK := v.([]uint16); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*2), len(s), true
		}
	case "Int16":
		if s, isOK := v.([]int16); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*2), len(s), true
		}
	case "UInt32":
		if s, isOK := v.([]uint32); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4), len(s), true
		}
	case "Int32":
		if s, isOK := v.([]int32); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4), len(s), true
		}
	case "Float32":
		if s, isOK := v.([]float32); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4), len(s), true
		}
	case "UInt64":
		if s, isOK := v.([]uint64); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*8), len(s), true
		}
	case "Int64":
		if s, isOK := v.([]int64); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*8), len(s), true
		}
	case "Float64":
		if s, isOK := v.([]float64); isOK {
			return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*8), len(s), true
		}
	}

	return nil, 0, false
}

// fastDecodeSlice constructs a typed view directly over raw (which
// aliases the cursor's backing buffer) instead of copying element by
// element. This is only safe because the streaming reader never
// compacts its buffer in place once such a view has been handed out,
// and because the caller has already verified raw starts at an offset
// aligned for elemName's width (see alignedOffset).
func fastDecodeSlice(raw []byte, count int, elemName string) any {
	if count == 0 {
		return rawSliceOf(elemName)
	}

	ptr := unsafe.Pointer(unsafe.SliceData(raw))
	switch elemName {
	case "UInt8":
		return unsafe.Slice((*uint8)(ptr), count)
	case "Int8":
		return unsafe.Slice((*int8)(ptr), count)
	case "UInt16":
		return unsafe.Slice((*uint16)(ptr), count)
	case "Int16":
		return unsafe.Slice((*int16)(ptr), count)
	case "UInt32":
		return unsafe.Slice((*uint32)(ptr), count)
	case "Int32":
		return unsafe.Slice((*int32)(ptr), count)
	case "Float32":
		return unsafe.Slice((*float32)(ptr), count)
	case "UInt64":
		return unsafe.Slice((*uint64)(ptr), count)
	case "Int64":
		return unsafe.Slice((*int64)(ptr), count)
	case "Float64":
		return unsafe.Slice((*float64)(ptr), count)
	default:
		return raw
	}
}

// alignedOffset reports whether raw's backing array starts at an offset
// suitable for reinterpreting as a slice of the given element width. A
// RowBinary cursor's position depends on however many variable-length
// columns preceded this one, so the start of raw has no alignment
// guarantee the way a freshly make()'d slice would; fastDecodeSlice's
// unsafe.Slice call is only well-defined when this holds.
func alignedOffset(raw []byte, width int) bool {
	if width <= 1 || len(raw) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(raw)))%uintptr(width) == 0
}

// copyIntoAligned copies raw into a buffer guaranteed to be aligned for
// elemName's width, then reinterprets that buffer the way fastDecodeSlice
// does. It's the fallback for the (rare, but real) case where the
// cursor's current offset isn't a multiple of the element width.
//
// The destination buffers come from the int64/float64 slice pools and the
// blob buffer pool, but are never returned to those pools: the caller
// takes the decoded slice as the permanent value of a row field, so
// recycling the backing array back into the pool would let a future Get
// hand the same memory to an unrelated decode while this row still
// references it.
func copyIntoAligned(raw []byte, count int, elemName string) any {
	switch elemName {
	case "Int64":
		out, _ := pool.GetInt64Slice(count)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(out))), len(raw)), raw)

		return out
	case "Float64":
		out, _ := pool.GetFloat64Slice(count)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(out))), len(raw)), raw)

		return out
	default:
		bb := pool.GetBlobBuffer()
		bb.Reset()
		bb.ExtendOrGrow(len(raw))
		copy(bb.Bytes(), raw)

		return fastDecodeSlice(bb.Bytes(), count, elemName)
	}
}

func rawSliceOf(elemName string) any {
	switch elemName {
	case "UInt8":
		return []uint8{}
	case "Int8":
		return []int8{}
	case "UInt16":
		return []uint16{}
	case "Int16":
		return []int16{}
	case "UInt32":
		return []uint32{}
	case "Int32":
		return []int32{}
	case "Float32":
		return []float32{}
	case "UInt64":
		return []uint64{}
	case "Int64":
		return []int64{}
	case "Float64":
		return []float64{}
	default:
		return []byte{}
	}
}
