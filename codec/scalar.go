package codec

// scalarCodecs holds the singleton codec for every zero-argument type
// name. Registry.build consults this map first, before falling through
// to the parametric/composite dispatch switch.
var scalarCodecs = map[string]Codec{
	"UInt8":  &uint8Codec{base{"UInt8"}},
	"UInt16": &uint16Codec{base{"UInt16"}},
	"UInt32": &uint32Codec{base{"UInt32"}},
	"UInt64": &uint64Codec{base{"UInt64"}},
	"Int8":   &int8Codec{base{"Int8"}},
	"Int16":  &int16Codec{base{"Int16"}},
	"Int32":  &int32Codec{base{"Int32"}},
	"Int64":  &int64Codec{base{"Int64"}},

	"UInt128": &uint128Codec{base{"UInt128"}},
	"UInt256": &uint256Codec{base{"UInt256"}},
	"Int128":  &int128Codec{base{"Int128"}},
	"Int256":  &int256Codec{base{"Int256"}},

	"Float32": &float32Codec{base{"Float32"}},
	"Float64": &float64Codec{base{"Float64"}},

	"Bool":    &boolCodec{base{"Bool"}},
	"String":  &stringCodec{base{"String"}},
	"Nothing": &nothingCodec{base{"Nothing"}},

	"Date":     &dateCodec{base{"Date"}},
	"Date32":   &date32Codec{base{"Date32"}},
	"DateTime": &dateTimeCodec{base{"DateTime"}},

	"UUID": &uuidCodec{base{"UUID"}},
	"IPv4": &ipv4Codec{base{"IPv4"}},
	"IPv6": &ipv6Codec{base{"IPv6"}},
}
