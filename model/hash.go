package model

import (
	"crypto/sha256"
	"encoding/binary"
)

// StructuralHash is a content hash of an entity's fields, computed after any
// entity references inside it have already been substituted by their
// ObjectId. Two entities that hash equal are structurally identical and
// share one storage slot (Invariant 3 in SPEC_FULL.md §3).
//
// original_source/format/src/model/typehash.rs computes this with Rust's
// DefaultHasher over a #[derive(Hash)] struct. Go has no equivalent derive,
// and DefaultHasher's bit layout is not something Go code could reproduce
// meaningfully anyway (it's process-local and unstable across Rust
// versions). Since every observer of a StructuralHash only ever compares it
// for equality — never inspects its bits — a from-scratch digest is
// behaviorally identical: this type instead hashes a canonical, field-order
// stable byte encoding with sha256. See DESIGN.md for the standard-library
// justification (crypto/sha256 is stdlib; no hashing library appears
// anywhere in the retrieval pack).
type StructuralHash [sha256.Size]byte

// hasher accumulates a canonical byte stream for one entity's fields, then
// finalizes into a StructuralHash. Each Write* call writes a distinct tag
// byte before its payload so that e.g. a uint64 field and a string field of
// coincidentally overlapping bytes can never collide.
type hasher struct {
	h []byte
}

func newHasher() *hasher { return &hasher{} }

const (
	tagString byte = iota + 1
	tagUint64
	tagBool
	tagBytes
	tagNil
)

func (hh *hasher) WriteString(s string) *hasher {
	hh.h = append(hh.h, tagString)
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(s)))
	hh.h = append(hh.h, length[:]...)
	hh.h = append(hh.h, s...)
	return hh
}

func (hh *hasher) WriteUint64(v uint64) *hasher {
	hh.h = append(hh.h, tagUint64)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	hh.h = append(hh.h, buf[:]...)
	return hh
}

func (hh *hasher) WriteBool(b bool) *hasher {
	hh.h = append(hh.h, tagBool)
	if b {
		hh.h = append(hh.h, 1)
	} else {
		hh.h = append(hh.h, 0)
	}
	return hh
}

func (hh *hasher) WriteHash(other StructuralHash) *hasher {
	hh.h = append(hh.h, tagBytes)
	hh.h = append(hh.h, other[:]...)
	return hh
}

// WriteOptionalString writes a presence marker followed by the value, so
// that a present-but-empty string never collides with an absent one.
func (hh *hasher) WriteOptionalString(s *string) *hasher {
	if s == nil {
		hh.h = append(hh.h, tagNil)
		return hh
	}
	return hh.WriteString(*s)
}

func (hh *hasher) WriteOptionalInt(v *int) *hasher {
	if v == nil {
		hh.h = append(hh.h, tagNil)
		return hh
	}
	return hh.WriteUint64(uint64(*v))
}

func (hh *hasher) Sum() StructuralHash {
	return sha256.Sum256(hh.h)
}
