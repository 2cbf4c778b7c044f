package nock

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrParse is the cause of every malformed-notation error.
var ErrParse = errors.New("nock: parse failed")

// Reader reads nouns in the usual notation: atoms are decimal digits with
// optional '.' separators anywhere after the first digit (1.000.000), cells
// are 2 or more nouns in brackets, with [a b c] meaning [a [b c]].
type Reader struct {
	src io.RuneScanner
	pos int // runes consumed
}

// NewReader reads nouns from r, buffering it unless it is already an
// `io.RuneScanner`.
func NewReader(r io.Reader) *Reader {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Reader{src: rs}
}

// Parse reads src, which must hold exactly one noun and optional whitespace.
func Parse(src string) (Noun, error) {
	rr := NewReader(strings.NewReader(src))
	n, err := rr.Read()
	if err == io.EOF {
		return nil, rr.errorf("no noun in input")
	} else if err != nil {
		return nil, err
	}
	if err = rr.skipSpace(); err != nil {
		return nil, err
	}
	if r, err := rr.peek(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, rr.errorf("unexpected %q after noun", r)
	}
	return n, nil
}

// Read returns the next noun, or `io.EOF` when only whitespace remains.
// On error nothing of the partially read noun is returned.
func (me *Reader) Read() (Noun, error) {
	if err := me.skipSpace(); err != nil {
		return nil, err
	}
	if _, err := me.peek(); err != nil {
		return nil, err
	}
	return me.parseNoun()
}

func (me *Reader) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParse, "at %d: "+format, append([]interface{}{me.pos}, args...)...)
}

func (me *Reader) peek() (rune, error) {
	r, _, err := me.src.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, me.src.UnreadRune()
}

func (me *Reader) next() {
	if _, _, err := me.src.ReadRune(); err == nil {
		me.pos++
	}
}

func (me *Reader) skipSpace() error {
	for {
		r, err := me.peek()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		} else if !unicode.IsSpace(r) {
			return nil
		}
		me.next()
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (me *Reader) parseNoun() (Noun, error) {
	if err := me.skipSpace(); err != nil {
		return nil, err
	}
	r, err := me.peek()
	switch {
	case err == io.EOF:
		return nil, me.errorf("unexpected end of input")
	case err != nil:
		return nil, err
	case isDigit(r):
		return me.parseAtom()
	case r == '[':
		return me.parseCell()
	}
	return nil, me.errorf("unexpected %q", r)
}

func (me *Reader) parseAtom() (Noun, error) {
	var buf []byte
	for {
		r, err := me.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if isDigit(r) {
			me.next()
			buf = append(buf, byte(r))
		} else if r == '.' {
			me.next()
		} else if r == '[' || r == ']' || unicode.IsSpace(r) {
			break
		} else {
			return nil, me.errorf("unexpected %q in atom", r)
		}
	}
	if len(buf) == 0 {
		return nil, me.errorf("atom without digits")
	}
	a, ok := AtomFromDecimal(string(buf))
	if !ok {
		return nil, me.errorf("bad atom %s", buf)
	}
	return a, nil
}

func (me *Reader) parseCell() (Noun, error) {
	me.next() // '['
	var elts []Noun
	for {
		if err := me.skipSpace(); err != nil {
			return nil, err
		}
		r, err := me.peek()
		if err == io.EOF {
			return nil, me.errorf("unterminated cell")
		} else if err != nil {
			return nil, err
		}
		if r == ']' {
			me.next()
			break
		}
		n, err := me.parseNoun()
		if err != nil {
			return nil, err
		}
		elts = append(elts, n)
	}
	if len(elts) < 2 {
		return nil, me.errorf("cell of %d nouns", len(elts))
	}
	return Cells(elts...), nil
}
