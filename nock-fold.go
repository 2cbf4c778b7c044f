package nock

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/xxh3"
)

// Fold computes one result for n bottom-up: onAtom for every atom's digits,
// onCell for every cell from its children's results. Each distinct sub-noun
// (by identity) is visited once per call, so shared structure costs what the
// shared graph costs and not what its expansion would. Nothing is cached
// across calls.
func Fold[T any](n Noun, onAtom func(digits []byte) T, onCell func(l T, r T) T) T {
	memo := make(map[Noun]T)
	var walk func(Noun) T
	walk = func(n Noun) T {
		if ret, ok := memo[n]; ok {
			return ret
		}
		var ret T
		switch it := n.(type) {
		case *NounAtom:
			ret = onAtom(it.digits)
		case *NounCell:
			l := walk(it.L)
			ret = onCell(l, walk(it.R))
		}
		memo[n] = ret
		return ret
	}
	return walk(n)
}

const (
	hashTagAtom byte = 'a'
	hashTagCell byte = 'c'
)

// Hash is a structural hash: equal nouns hash equal regardless of sharing.
func Hash(n Noun) uint64 {
	return Fold(n,
		func(digits []byte) uint64 {
			buf := make([]byte, 0, 1+len(digits))
			return xxh3.Hash(append(append(buf, hashTagAtom), digits...))
		},
		func(l uint64, r uint64) uint64 {
			var buf [17]byte
			buf[0] = hashTagCell
			binary.LittleEndian.PutUint64(buf[1:], l)
			binary.LittleEndian.PutUint64(buf[9:], r)
			return xxh3.Hash(buf[:])
		},
	)
}

// LeafCount is the number of atoms n would have if no sub-noun were shared.
func LeafCount(n Noun) *big.Int {
	one := big.NewInt(1)
	return Fold(n,
		func([]byte) *big.Int { return one },
		func(l *big.Int, r *big.Int) *big.Int { return new(big.Int).Add(l, r) },
	)
}
