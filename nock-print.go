package nock

import (
	"strconv"
	"strings"
)

// String renders me in decimal with a '.' between every 3 digits, counted
// from the right: 1.000.000
func (me *NounAtom) String() string {
	var s string
	if ui, ok := me.Uint64(); ok {
		s = strconv.FormatUint(ui, 10)
	} else {
		s = me.Big().Text(10)
	}
	if len(s) <= 3 {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s) + len(s)/3)
	phase := len(s) % 3
	for i := 0; i < len(s); i++ {
		if i > 0 && i%3 == phase {
			buf.WriteByte('.')
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

// String renders right-nested cells flat: [a [b c]] prints as [a b c].
func (me *NounCell) String() string {
	var buf strings.Builder
	writeNoun(&buf, me)
	return buf.String()
}

func writeNoun(buf *strings.Builder, n Noun) {
	switch it := n.(type) {
	case *NounAtom:
		buf.WriteString(it.String())
	case *NounCell:
		buf.WriteByte('[')
		writeNoun(buf, it.L)
		cur := it.R
		for tail, ok := cur.(*NounCell); ok; tail, ok = cur.(*NounCell) {
			buf.WriteByte(' ')
			writeNoun(buf, tail.L)
			cur = tail.R
		}
		buf.WriteByte(' ')
		writeNoun(buf, cur)
		buf.WriteByte(']')
	}
}
