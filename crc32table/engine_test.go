package crc32table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum_SpecVector(t *testing.T) {
	assert.Equal(t, uint32(0xBA787D5F), Checksum([]byte{0xC0, 0xFF, 0xEE}))
}

func TestChecksum_Empty(t *testing.T) {
	// CRC-32 of an empty input is always 0: init register XORed with itself
	// after the final complement.
	assert.Equal(t, uint32(0), Checksum(nil))
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, Checksum(data), Checksum(data))
}

func TestChecksum_DiffersOnSingleBitFlip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	base := Checksum(data)

	flipped := append([]byte(nil), data...)
	flipped[2] ^= 0x01

	assert.NotEqual(t, base, Checksum(flipped))
}

func TestChecksum_KnownIEEEVectors(t *testing.T) {
	// "123456789" is the standard CRC-32/ISO-HDLC check string.
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
}
