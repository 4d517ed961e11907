package utils

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// HashStringSeeded folds a run seed into the hash so that two runs with
// different seeds produce independent partition assignments.
func HashStringSeeded(s string, seed uint64) uint64 {
	hash := murmur3.New64()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	if _, err := hash.Write(buf[:]); err != nil {
		panic(err)
	}
	if _, err := hash.Write([]byte(s)); err != nil {
		panic(err)
	}
	return hash.Sum64()
}
