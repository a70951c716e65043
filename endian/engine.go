// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, so encoders can both read fixed-width integers and append them
// without an intermediate scratch buffer.
//
// The UR wire format is big-endian throughout: CRC-32 trailers, sequence
// numbers in PRNG seed material, and checksum serialization all use
// GetBigEndianEngine():
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, checksum)
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless, and safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the UR wire
// format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns a little-endian engine for callers that
// interoperate with little-endian layouts.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
