package nock

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrConvert is the cause of every failed noun-to-Go conversion.
var ErrConvert = errors.New("nock: noun does not convert")

func AtomFromUint[T constraints.Unsigned](v T) *NounAtom {
	digits := make([]byte, 8)
	binary.LittleEndian.PutUint64(digits, uint64(v))
	return atom(digits)
}

// AtomFromBig panics on negative z, atoms being natural numbers.
func AtomFromBig(z *big.Int) *NounAtom {
	if z.Sign() < 0 {
		panic("nock.AtomFromBig: negative " + z.String())
	}
	digits := z.Bytes()
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return atom(digits)
}

// AtomFromDecimal reads a plain run of ASCII decimal digits.
func AtomFromDecimal(s string) (*NounAtom, bool) {
	if len(s) <= 19 {
		if ui, err := strconv.ParseUint(s, 10, 64); err == nil {
			return AtomFromUint(ui), true
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return AtomFromBig(z), true
}

func (me *NounAtom) Big() *big.Int {
	be := make([]byte, len(me.digits))
	for i, d := range me.digits {
		be[len(be)-1-i] = d
	}
	return new(big.Int).SetBytes(be)
}

// Uint64 reports false if me does not fit 64 bits.
func (me *NounAtom) Uint64() (uint64, bool) {
	if len(me.digits) > 8 {
		return 0, false
	}
	var ret uint64
	for i := len(me.digits) - 1; i >= 0; i-- {
		ret = (ret << 8) | uint64(me.digits[i])
	}
	return ret, true
}

// Uint32 reports false if me does not fit 32 bits. Digits are canonical, so
// the check is exact right up to 0xFFFFFFFF.
func (me *NounAtom) Uint32() (uint32, bool) {
	if len(me.digits) > 4 {
		return 0, false
	}
	ui, _ := me.Uint64()
	return uint32(ui), true
}

// UintFromNoun converts an atom to T, failing on cells and on atoms beyond
// T's range rather than truncating.
func UintFromNoun[T constraints.Unsigned](n Noun) (T, error) {
	a, ok := n.(*NounAtom)
	if !ok {
		return 0, errors.Wrapf(ErrConvert, "cell %s is not a number", n)
	}
	ui, ok := a.Uint64()
	if !ok || uint64(T(ui)) != ui {
		return 0, errors.Wrapf(ErrConvert, "atom %s overflows %T", a, T(0))
	}
	return T(ui), nil
}

// PairFromNoun converts the cell [l r] via fromL and fromR.
func PairFromNoun[T any, U any](n Noun, fromL func(Noun) (T, error), fromR func(Noun) (U, error)) (l T, r U, err error) {
	cell, ok := n.(*NounCell)
	if !ok {
		err = errors.Wrapf(ErrConvert, "atom %s is not a pair", n)
		return
	}
	if l, err = fromL(cell.L); err != nil {
		return
	}
	r, err = fromR(cell.R)
	return
}

// Cells right-folds nouns: Cells(a, b, c) is [a [b c]].
func Cells(nouns ...Noun) Noun {
	if len(nouns) == 0 {
		panic("nock.Cells: no nouns")
	}
	ret := nouns[len(nouns)-1]
	for i := len(nouns) - 2; i >= 0; i-- {
		ret = Cell(nouns[i], ret)
	}
	return ret
}

// N is the literal constructor: N(1, 2, 3) is [1 2 3]. Accepts nouns,
// non-negative integers of any Go kind, *big.Int and noun notation strings;
// anything else panics.
func N(v ...interface{}) Noun {
	nouns := make([]Noun, len(v))
	for i := range v {
		nouns[i] = toNoun(v[i])
	}
	return Cells(nouns...)
}

func toNoun(v interface{}) Noun {
	switch t := v.(type) {
	case Noun:
		return t
	case uint:
		return AtomFromUint(t)
	case uint8:
		return AtomFromUint(t)
	case uint16:
		return AtomFromUint(t)
	case uint32:
		return AtomFromUint(t)
	case uint64:
		return AtomFromUint(t)
	case uintptr:
		return AtomFromUint(t)
	case int:
		return atomFromInt(int64(t))
	case int8:
		return atomFromInt(int64(t))
	case int16:
		return atomFromInt(int64(t))
	case int32:
		return atomFromInt(int64(t))
	case int64:
		return atomFromInt(t)
	case *big.Int:
		return AtomFromBig(t)
	case string:
		n, err := Parse(t)
		if err != nil {
			panic(err)
		}
		return n
	}
	panic(fmt.Sprintf("nock.N: cannot make a noun from %T %v", v, v))
}

func atomFromInt(i int64) *NounAtom {
	if i < 0 {
		panic("nock.N: negative " + strconv.FormatInt(i, 10))
	}
	return AtomFromUint(uint64(i))
}
