package treasurytest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/treasury"
)

var condSeq uint64

// NewCondition returns a new, unique condition. Each call returns a
// condition different from any other returned before.
func NewCondition() treasury.Condition {
	var data [8]byte
	binary.BigEndian.PutUint64(data[:], atomic.AddUint64(&condSeq, 1))
	return treasury.NewCondition("test", "seq", data[:])
}

// NewAddress returns the address of a new, unique condition.
func NewAddress() treasury.Address {
	return NewCondition().Address()
}
