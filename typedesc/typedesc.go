// Package typedesc implements the binary type-descriptor frame used
// inside Dynamic and JSON payloads: a single-byte type code, optionally
// followed by a parametric body, self-describing enough to reconstruct
// the type's canonical textual form without an external schema. Enum8
// and Enum16 are the exception: their descriptor is the bare code with
// no body, so Read returns them without their label list.
//
// It depends only on chtype and wire, not on the codec package: decoding
// a descriptor yields a chtype.Node, and it is the caller's job (the
// codec package's Dynamic/JSON codecs) to turn that into an actual Codec
// via the registry. This keeps the dependency one-directional.
package typedesc

import (
	"fmt"

	"github.com/lithiumdb/chwire/chtype"
	"github.com/lithiumdb/chwire/errs"
	"github.com/lithiumdb/chwire/wire"
)

// Type codes, from a closed table.
const (
	codeNothing = 0x00
	codeUInt8   = 0x01
	codeUInt16  = 0x02
	codeUInt32  = 0x03
	codeUInt64  = 0x04
	codeUInt128 = 0x05
	codeUInt256 = 0x06
	codeInt8    = 0x07
	codeInt16   = 0x08
	codeInt32   = 0x09
	codeInt64   = 0x0A
	codeInt128  = 0x0B
	codeInt256  = 0x0C
	codeFloat32 = 0x0D
	codeFloat64 = 0x0E
	codeDate    = 0x0F
	codeDate32  = 0x10
	codeDateTime       = 0x11
	codeDateTime64     = 0x13
	codeDateTime64TZ   = 0x14
	codeString         = 0x15
	codeFixedString    = 0x16
	codeEnum8          = 0x17
	codeEnum16         = 0x18
	codeDecimal32      = 0x19
	codeDecimal64      = 0x1A
	codeDecimal128     = 0x1B
	codeDecimal256     = 0x1C
	codeUUID           = 0x1D
	codeArray          = 0x1E
	codeTuplePositional = 0x1F
	codeTupleNamed      = 0x20
	codeNullable        = 0x23
	codeMap             = 0x27
	codeIPv4            = 0x28
	codeIPv6            = 0x29
	codeVariant         = 0x2A
	codeDynamic         = 0x2B
	codeBool            = 0x2D
)

var scalarCode = map[string]byte{
	"Nothing":  codeNothing,
	"UInt8":    codeUInt8,
	"UInt16":   codeUInt16,
	"UInt32":   codeUInt32,
	"UInt64":   codeUInt64,
	"UInt128":  codeUInt128,
	"UInt256":  codeUInt256,
	"Int8":     codeInt8,
	"Int16":    codeInt16,
	"Int32":    codeInt32,
	"Int64":    codeInt64,
	"Int128":   codeInt128,
	"Int256":   codeInt256,
	"Float32":  codeFloat32,
	"Float64":  codeFloat64,
	"Date":     codeDate,
	"Date32":   codeDate32,
	"DateTime": codeDateTime,
	"String":   codeString,
	"UUID":     codeUUID,
	"IPv4":     codeIPv4,
	"IPv6":     codeIPv6,
	"Dynamic":  codeDynamic,
	"Bool":     codeBool,
}

var codeScalar = func() map[byte]string {
	m := make(map[byte]string, len(scalarCode))
	for name, code := range scalarCode {
		m[code] = name
	}

	return m
}()

// decimalDefaultPrecision is ClickHouse's implied precision for the
// fixed-width Decimal spellings, used when a textual form (Decimal32(s))
// omits an explicit precision.
var decimalDefaultPrecision = map[string]int{
	"Decimal32": 9, "Decimal64": 18, "Decimal128": 38, "Decimal256": 76,
}

// Write emits n's binary type descriptor: a type code byte, followed by
// a parametric body for the types that carry one.
func Write(w *wire.Writer, n chtype.Node) error {
	if code, ok := scalarCode[n.Name]; ok {
		wire.WriteUint8(w, code)

		return nil
	}

	switch n.Name {
	case "Nullable":
		wire.WriteUint8(w, codeNullable)

		return Write(w, n.Args[0])
	case "Array":
		wire.WriteUint8(w, codeArray)

		return Write(w, n.Args[0])
	case "Map":
		wire.WriteUint8(w, codeMap)
		if err := Write(w, n.Args[0]); err != nil {
			return err
		}

		return Write(w, n.Args[1])
	case "Tuple":
		named := n.ElemName != "" || tupleIsNamed(n)
		if named {
			wire.WriteUint8(w, codeTupleNamed)
		} else {
			wire.WriteUint8(w, codeTuplePositional)
		}
		wire.WriteUvarint(w, uint64(len(n.Args)))
		for _, arg := range n.Args {
			if named {
				wire.WriteString(w, arg.ElemName)
			}
			if err := Write(w, arg); err != nil {
				return err
			}
		}

		return nil
	case "Variant":
		wire.WriteUint8(w, codeVariant)
		wire.WriteUvarint(w, uint64(len(n.Args)))
		for _, arg := range n.Args {
			if err := Write(w, arg); err != nil {
				return err
			}
		}

		return nil
	case "FixedString":
		wire.WriteUint8(w, codeFixedString)
		size, err := chtype.ParseUint(n.Params[0])
		if err != nil {
			return err
		}
		wire.WriteUvarint(w, uint64(size))

		return nil
	case "Enum8":
		wire.WriteUint8(w, codeEnum8)

		return nil
	case "Enum16":
		wire.WriteUint8(w, codeEnum16)

		return nil
	case "DateTime64":
		precision, err := chtype.ParseUint(n.Params[0])
		if err != nil {
			return err
		}
		if len(n.Params) >= 2 {
			wire.WriteUint8(w, codeDateTime64TZ)
			wire.WriteUint8(w, uint8(precision))
			wire.WriteString(w, n.Params[1])

			return nil
		}
		wire.WriteUint8(w, codeDateTime64)
		wire.WriteUint8(w, uint8(precision))

		return nil
	case "Decimal", "Decimal32", "Decimal64", "Decimal128", "Decimal256":
		return writeDecimal(w, n)
	}

	return errs.NewTypeError("typedesc.Write", n.Raw, errs.ErrUnsupportedType)
}

func tupleIsNamed(n chtype.Node) bool {
	for _, arg := range n.Args {
		if arg.ElemName != "" {
			return true
		}
	}

	return false
}

func writeDecimal(w *wire.Writer, n chtype.Node) error {
	var code byte
	var precision, scale int
	var err error

	switch n.Name {
	case "Decimal":
		precision, err = chtype.ParseUint(n.Params[0])
		if err != nil {
			return err
		}
		scale, err = chtype.ParseUint(n.Params[1])
		if err != nil {
			return err
		}
		switch {
		case precision <= 9:
			code = codeDecimal32
		case precision <= 18:
			code = codeDecimal64
		case precision <= 38:
			code = codeDecimal128
		default:
			code = codeDecimal256
		}
	default:
		scale, err = chtype.ParseUint(n.Params[0])
		if err != nil {
			return err
		}
		precision = decimalDefaultPrecision[n.Name]
		switch n.Name {
		case "Decimal32":
			code = codeDecimal32
		case "Decimal64":
			code = codeDecimal64
		case "Decimal128":
			code = codeDecimal128
		case "Decimal256":
			code = codeDecimal256
		}
	}

	wire.WriteUint8(w, code)
	wire.WriteUint8(w, uint8(precision))
	wire.WriteUint8(w, uint8(scale))

	return nil
}

// Read reads a binary type descriptor and returns the chtype.Node it
// describes, suitable for n.String() to hand to the codec registry.
func Read(cur *wire.Cursor) (chtype.Node, error) {
	code, err := wire.ReadUint8(cur)
	if err != nil {
		return chtype.Node{}, err
	}

	if name, ok := codeScalar[code]; ok {
		return chtype.Node{Name: name, Raw: name}, nil
	}

	switch code {
	case codeNullable:
		inner, err := Read(cur)
		if err != nil {
			return chtype.Node{}, err
		}

		return wrap1("Nullable", inner), nil
	case codeArray:
		inner, err := Read(cur)
		if err != nil {
			return chtype.Node{}, err
		}

		return wrap1("Array", inner), nil
	case codeMap:
		k, err := Read(cur)
		if err != nil {
			return chtype.Node{}, err
		}
		v, err := Read(cur)
		if err != nil {
			return chtype.Node{}, err
		}

		return wrap2("Map", k, v), nil
	case codeTuplePositional, codeTupleNamed:
		n, err := wire.ReadUvarint(cur)
		if err != nil {
			return chtype.Node{}, err
		}
		args := make([]chtype.Node, n)
		for i := range args {
			if code == codeTupleNamed {
				name, err := wire.ReadString(cur)
				if err != nil {
					return chtype.Node{}, err
				}
				arg, err := Read(cur)
				if err != nil {
					return chtype.Node{}, err
				}
				arg.ElemName = name
				args[i] = arg

				continue
			}
			arg, err := Read(cur)
			if err != nil {
				return chtype.Node{}, err
			}
			args[i] = arg
		}

		return chtype.Node{Name: "Tuple", Args: args, Raw: "Tuple(...)"}, nil
	case codeVariant:
		n, err := wire.ReadUvarint(cur)
		if err != nil {
			return chtype.Node{}, err
		}
		args := make([]chtype.Node, n)
		for i := range args {
			arg, err := Read(cur)
			if err != nil {
				return chtype.Node{}, err
			}
			args[i] = arg
		}

		return chtype.Node{Name: "Variant", Args: args, Raw: "Variant(...)"}, nil
	case codeFixedString:
		n, err := wire.ReadUvarint(cur)
		if err != nil {
			return chtype.Node{}, err
		}

		return chtype.Node{Name: "FixedString", Params: []string{fmt.Sprint(n)}, Raw: "FixedString(...)"}, nil
	case codeEnum8:
		return chtype.Node{Name: "Enum8", Raw: "Enum8"}, nil
	case codeEnum16:
		return chtype.Node{Name: "Enum16", Raw: "Enum16"}, nil
	case codeDateTime64, codeDateTime64TZ:
		precision, err := wire.ReadUint8(cur)
		if err != nil {
			return chtype.Node{}, err
		}
		params := []string{fmt.Sprint(precision)}
		if code == codeDateTime64TZ {
			tz, err := wire.ReadString(cur)
			if err != nil {
				return chtype.Node{}, err
			}
			params = append(params, "'"+tz+"'")
		}

		return chtype.Node{Name: "DateTime64", Params: params, Raw: "DateTime64(...)"}, nil
	case codeDecimal32, codeDecimal64, codeDecimal128, codeDecimal256:
		_, err := wire.ReadUint8(cur) // precision: implied by the code, kept only for wire fidelity
		if err != nil {
			return chtype.Node{}, err
		}
		scale, err := wire.ReadUint8(cur)
		if err != nil {
			return chtype.Node{}, err
		}
		name := map[byte]string{
			codeDecimal32: "Decimal32", codeDecimal64: "Decimal64",
			codeDecimal128: "Decimal128", codeDecimal256: "Decimal256",
		}[code]

		return chtype.Node{Name: name, Params: []string{fmt.Sprint(scale)}, Raw: name + "(...)"}, nil
	}

	return chtype.Node{}, errs.NewTypeError("typedesc.Read", fmt.Sprintf("code 0x%02X", code), errs.ErrUnsupportedType)
}

func wrap1(name string, inner chtype.Node) chtype.Node {
	return chtype.Node{Name: name, Args: []chtype.Node{inner}, Raw: name + "(...)"}
}

func wrap2(name string, a, b chtype.Node) chtype.Node {
	return chtype.Node{Name: name, Args: []chtype.Node{a, b}, Raw: name + "(...)"}
}
