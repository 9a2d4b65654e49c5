package chtype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithiumdb/chwire/errs"
)

// reservedTypeNames lists every identifier the grammar recognizes as a
// type name rather than a tuple field name. It guards the named-tuple
// detection in splitNamedElement: even if an element contains a top-level
// space, a leading token that names a known type (e.g. a stray
// "Array (String)" with defensive spacing) is never mistaken for a field
// name.
var reservedTypeNames = map[string]bool{
	"UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true,
	"Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"Int128": true, "Int256": true, "UInt128": true, "UInt256": true,
	"Float32": true, "Float64": true, "Bool": true, "String": true,
	"Date": true, "Date32": true, "DateTime": true, "DateTime64": true,
	"UUID": true, "IPv4": true, "IPv6": true, "Nothing": true,
	"Nullable": true, "LowCardinality": true, "Array": true, "Nested": true,
	"Map": true, "Tuple": true, "FixedString": true,
	"Decimal": true, "Decimal32": true, "Decimal64": true, "Decimal128": true, "Decimal256": true,
	"Enum8": true, "Enum16": true, "JSON": true, "Object": true,
	"Dynamic": true, "Variant": true,
	"Point": true, "Ring": true, "Polygon": true, "MultiPolygon": true,
}

// Parse parses a ClickHouse textual type descriptor into a Node tree.
func Parse(s string) (Node, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Node{}, errs.NewTypeError("parse", s, errs.ErrUnsupportedType)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if !isIdent(s) {
			return Node{}, errs.NewTypeError("parse", s, errs.ErrUnsupportedType)
		}

		return Node{Name: s, Raw: s}, nil
	}

	if s[len(s)-1] != ')' {
		return Node{}, errs.NewTypeError("parse", s, errs.ErrUnsupportedType)
	}

	name := s[:open]
	if !isIdent(name) {
		return Node{}, errs.NewTypeError("parse", s, errs.ErrUnsupportedType)
	}
	body := s[open+1 : len(s)-1]

	parts, err := SplitArgs(body)
	if err != nil {
		return Node{}, errs.NewTypeError("parse", s, err)
	}

	if IsLeafParametric(name) {
		trimmed := make([]string, len(parts))
		for i, p := range parts {
			trimmed[i] = strings.TrimSpace(p)
		}

		return Node{Name: name, Params: trimmed, Raw: s}, nil
	}

	args := make([]Node, 0, len(parts))
	namedCount := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		elemName, rest := splitNamedElement(part)

		var child Node
		if elemName != "" {
			child, err = Parse(rest)
			if err != nil {
				return Node{}, err
			}
			child.ElemName = elemName
			namedCount++
		} else {
			child, err = Parse(part)
			if err != nil {
				return Node{}, err
			}
		}
		args = append(args, child)
	}

	if namedCount != 0 && namedCount != len(args) {
		return Node{}, errs.NewTypeError("parse", s,
			fmt.Errorf("%w: tuple mixes named and positional elements", errs.ErrMalformedValue))
	}

	return Node{Name: name, Args: args, Raw: s}, nil
}

// SplitArgs splits a comma-separated argument list at depth zero only,
// so that the body of "Tuple(Int64, Map(String, UInt8))" splits into
// "Int64" and " Map(String, UInt8)", not on the comma inside Map's parens.
// Parts are returned untrimmed.
// Quoted sections (Enum labels like 'a'=1) are also tracked so commas and
// parens inside string literals never affect the depth count.
func SplitArgs(body string) ([]string, error) {
	var parts []string
	depth := 0
	inQuote := false
	start := 0

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case inQuote:
			if c == '\'' && (i == 0 || body[i-1] != '\\') {
				inQuote = false
			}
		case c == '\'':
			inQuote = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return nil, errs.ErrUnsupportedType
			}
		case c == ',' && depth == 0:
			parts = append(parts, body[start:i])
			start = i + 1
		}
	}

	if depth != 0 || inQuote {
		return nil, errs.ErrUnsupportedType
	}
	parts = append(parts, body[start:])

	return parts, nil
}

// splitNamedElement splits a tuple element into (fieldName, type) if it
// looks like "<ident> <type>" and the leading identifier is not itself a
// reserved type name; otherwise it returns ("", element), meaning the
// element is positional.
func splitNamedElement(element string) (name string, rest string) {
	depth := 0
	for i := 0; i < len(element); i++ {
		switch element[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				candidate := element[:i]
				if isIdent(candidate) && !reservedTypeNames[candidate] {
					return candidate, strings.TrimSpace(element[i+1:])
				}

				return "", element
			}
		}
	}

	return "", element
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !isDigit {
			return false
		}
	}

	return true
}

// ParseUint parses a non-negative decimal integer parameter, as used for
// FixedString(N) lengths and Decimal/DateTime64 precision/scale.
func ParseUint(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errs.ErrMalformedValue
	}

	return n, nil
}
