package core

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// newID returns a fresh record identifier: milliseconds since epoch in base
// 36 concatenated with a random base-36 component. Monotonic enough for a
// single process; not a cryptographic or distributed-safe identifier.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	n := binary.BigEndian.Uint64(b[:])
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(n, 36)
}
