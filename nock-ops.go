package nock

import (
	"github.com/pkg/errors"
)

func (*NounAtom) DepthTest() *NounAtom {
	return False
}

func (*NounCell) DepthTest() *NounAtom {
	return True
}

// Increment returns me + 1, growing by a digit on carry-out.
func (me *NounAtom) Increment() *NounAtom {
	digits := make([]byte, len(me.digits), len(me.digits)+1)
	copy(digits, me.digits)
	for i := range digits {
		if digits[i]++; digits[i] != 0 {
			return atom(digits)
		}
	}
	return atom(append(digits, 1))
}

// Eq is the Same test on a cell's two halves: True when equal.
func (me *NounCell) Eq() *NounAtom {
	if Eq(me.L, me.R) {
		return True
	}
	return False
}

// Axis returns the sub-noun of tree at the given address: 1 is tree itself,
// 2a is the head of axis a and 2a+1 its tail.
func Axis(addr *NounAtom, tree Noun) (Noun, error) {
	n := addr.BitLen()
	if n == 0 {
		return nil, errors.Wrap(ErrNock, "axis 0")
	}
	cur := tree
	// below the top bit, from high to low: 0 picks the head, 1 the tail
	for i := n - 2; i >= 0; i-- {
		cell, ok := cur.(*NounCell)
		if !ok {
			return nil, errors.Wrapf(ErrNock, "axis %s runs into atom %s", addr, cur)
		}
		if addr.bit(i) == 0 {
			cur = cell.L
		} else {
			cur = cell.R
		}
	}
	return cur, nil
}
