package executor

import (
	"hash/fnv"

	"github.com/pmadamsetty/dbcore/pkg/tuple"
)

// SimpleHashFunction hashes a tuple by one of its attributes: integer
// attributes ("id", "val1") through a fixed integer-mixing function,
// the string attribute ("val2") through FNV-1a. It is stateless and
// value-typed.
type SimpleHashFunction struct {
	attr string
}

// NewSimpleHashFunction builds a hash function keyed by attr, which
// must be one of "id", "val1", "val2".
func NewSimpleHashFunction(attr string) (SimpleHashFunction, error) {
	if err := validateAttribute(attr); err != nil {
		return SimpleHashFunction{}, err
	}
	return SimpleHashFunction{attr: attr}, nil
}

// Hash returns the bucket key for t under this function's attribute.
func (h SimpleHashFunction) Hash(t tuple.Tuple) uint64 {
	switch h.attr {
	case "id":
		return mixInt(t.ID)
	case "val1":
		return mixInt(t.Val1)
	default:
		return fnv1a(t.Val2)
	}
}

// mixInt is a fixed 64-bit integer-mixing function (MurmurHash3's
// fmix64 finalizer), used to spread small sequential keys across buckets.
func mixInt(v int) uint64 {
	x := uint64(v)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func fnv1a(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
