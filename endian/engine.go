// Package endian provides byte order utilities for container header
// encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so header code can
// both read fixed fields and append fields without a temporary buffer.
// Game containers on the DS are little-endian throughout, so most callers
// only ever need GetLittleEndianEngine.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so it interoperates with any code written against the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order used by every container this library reads or writes.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
