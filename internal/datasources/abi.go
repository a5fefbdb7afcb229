package datasources

import (
	"encoding/binary"
	"fmt"
)

const abiWordSize = 32

// EncodeClearValues ABI-encodes cleartexts as a sequence of uint256 words.
func EncodeClearValues(values []uint64) []byte {
	out := make([]byte, len(values)*abiWordSize)
	for i, v := range values {
		binary.BigEndian.PutUint64(out[(i+1)*abiWordSize-8:], v)
	}
	return out
}

// DecodeClearValues decodes a sequence of uint256 words, rejecting values wider than 64 bits.
func DecodeClearValues(data []byte) ([]uint64, error) {
	if len(data)%abiWordSize != 0 {
		return nil, fmt.Errorf("invalid ABI payload length: %d", len(data))
	}
	values := make([]uint64, 0, len(data)/abiWordSize)
	for off := 0; off < len(data); off += abiWordSize {
		word := data[off : off+abiWordSize]
		for _, b := range word[:abiWordSize-8] {
			if b != 0 {
				return nil, fmt.Errorf("clear value at word %d overflows uint64", off/abiWordSize)
			}
		}
		values = append(values, binary.BigEndian.Uint64(word[abiWordSize-8:]))
	}
	return values, nil
}
