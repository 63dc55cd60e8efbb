// Package endian provides the byte-order engine used to read and write the
// multi-byte integer and float fields of the blob wire format.
//
// The wire format is little-endian only. The field layout code in section
// and blob routes its multi-byte accesses through the EndianEngine interface
// rather than calling binary.LittleEndian directly; frame and delta assemble
// their little-endian fields with explicit byte shifts instead.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it without any adapter.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine the blob wire format mandates.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
