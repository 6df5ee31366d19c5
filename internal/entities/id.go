package entities

import (
	"math/rand"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an opaque record identifier: the creation time in unix
// milliseconds encoded as base36, plus a 6-character random suffix.
func NewID() string {
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = base36[rand.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(buf)
}
