package intint

import (
	"encoding/binary"
)

// Keys are stored big endian with the sign bit flipped so the byte order of
// the tree matches the numeric order of the labels.

func SerializeInt32(i int32) []byte {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(i)^(1<<31))
	return bytes
}

func DeserializeInt32(bytes []byte) int32 {
	return int32(binary.BigEndian.Uint32(bytes) ^ (1 << 31))
}
