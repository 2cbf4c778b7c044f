// Package nock implements nouns, the Nock evaluator `*[subject formula]`
// and the textual noun notation.
package nock

import (
	"bytes"
	"math/bits"
)

// Loobeans: yes is 0, no is 1.
var (
	True  = &NounAtom{}
	False = &NounAtom{digits: []byte{1}}
)

// Noun is either a `*NounAtom` or a `*NounCell`. Nouns are never mutated
// once built, so any sub-noun can be shared by any number of holders.
type Noun interface {
	String() string
	DepthTest() *NounAtom
	eq(Noun) bool
}

// NounAtom is a natural number of any magnitude, kept as little-endian
// 8-bit digits without high-order zero digits.
type NounAtom struct {
	digits []byte
}

// NounCell is an ordered pair of nouns. L and R must not be reassigned
// after construction.
type NounCell struct {
	L Noun
	R Noun
}

// atom takes ownership of digits and trims them.
func atom(digits []byte) *NounAtom {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return &NounAtom{digits: digits[:n:n]}
}

// AtomFromDigits builds an atom from a little-endian digit sequence. The
// digits are copied; trailing zero digits do not contribute to the value.
func AtomFromDigits(digits []byte) *NounAtom {
	return atom(append([]byte(nil), digits...))
}

// Cell builds the pair [l r].
func Cell(l Noun, r Noun) *NounCell {
	if l == nil || r == nil {
		panic("nock.Cell: nil noun")
	}
	return &NounCell{L: l, R: r}
}

// Digits returns the canonical little-endian digits of me (empty for 0).
// The slice is shared, callers must not modify it.
func (me *NounAtom) Digits() []byte { return me.digits }

func (me *NounAtom) IsZero() bool { return len(me.digits) == 0 }

func (me *NounAtom) isOne() bool { return len(me.digits) == 1 && me.digits[0] == 1 }

// BitLen is the position of the highest set bit plus one, 0 for 0.
func (me *NounAtom) BitLen() int {
	if l := len(me.digits); l > 0 {
		return (l-1)*8 + bits.Len8(me.digits[l-1])
	}
	return 0
}

func (me *NounAtom) bit(i int) byte { return (me.digits[i/8] >> uint(i%8)) & 1 }

// Eq reports structural equality. Identity is only a shortcut, never a
// criterion.
func Eq(noun1 Noun, noun2 Noun) bool {
	return noun1 == noun2 || (noun1 != nil && noun1.eq(noun2))
}

func (me *NounAtom) eq(cmp Noun) bool {
	na, ok := cmp.(*NounAtom)
	return ok && (me == na || bytes.Equal(me.digits, na.digits))
}

func (me *NounCell) eq(cmp Noun) bool {
	// loop down the tails: right-nested lists are the common deep shape
	for cur := me; ; {
		nc, ok := cmp.(*NounCell)
		if !ok {
			return false
		} else if cur == nc {
			return true
		} else if !Eq(cur.L, nc.L) {
			return false
		}
		next, iscell := cur.R.(*NounCell)
		if !iscell {
			return cur.R.eq(nc.R)
		}
		cur, cmp = next, nc.R
	}
}

// Match122 destructures [p [q r]].
func Match122(n Noun) (p Noun, q Noun, r Noun, ok bool) {
	if c, iscell := n.(*NounCell); iscell {
		if t, istailcell := c.R.(*NounCell); istailcell {
			return c.L, t.L, t.R, true
		}
	}
	return nil, nil, nil, false
}

// Match221 destructures [[p q] r].
func Match221(n Noun) (p Noun, q Noun, r Noun, ok bool) {
	if c, iscell := n.(*NounCell); iscell {
		if h, isheadcell := c.L.(*NounCell); isheadcell {
			return h.L, h.R, c.R, true
		}
	}
	return nil, nil, nil, false
}
