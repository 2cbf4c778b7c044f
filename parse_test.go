package nock

import (
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	big60, _ := new(big.Int).SetString("999999999999999999999999999999999999999999999999999999999999", 10)
	tests := []struct {
		input string
		want  Noun
	}{
		{"0", N(0)},
		{"1", N(1)},
		{"1.000.000", N(1000000)},
		{"1.0.0", N(100)},
		{"4294967295", N(uint32(4294967295))},
		{"4294967296", N(uint64(4294967296))},
		{"999.999.999.999.999.999.999.999.999.999.999.999.999.999.999.999.999.999.999.999", AtomFromBig(big60)},
		{"[1 2]", N(1, 2)},
		{"[1 2 3]", N(1, 2, 3)},
		{"[1 [2 3]]", N(1, 2, 3)},
		{"[[1 2] 3]", N(N(1, 2), 3)},
		{"[[1 2][3 4]]", N(N(1, 2), N(3, 4))},
		{" \n\t[1\n2]  ", N(1, 2)},
		{"[ 1 2 ]", N(1, 2)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
		} else if !Eq(got, tt.want) {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseFailures(t *testing.T) {
	for _, input := range []string{"", "  ", "12ab", "[]", "[1]", "[1 2", "]", "[1 2]]", "[1 2] 3", "a", ".5", "-1", "[1 x]"} {
		got, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) = %s, want error", input, got)
		} else if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): %v is not ErrParse", input, err)
		}
		if got != nil {
			t.Errorf("Parse(%q) returned partial %s", input, got)
		}
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		n    Noun
		want string
	}{
		{N(0), "0"},
		{N(100), "100"},
		{N(1234), "1.234"},
		{N(123456), "123.456"},
		{N(1000000), "1.000.000"},
		{N(1, 2, 3), "[1 2 3]"},
		{N(N(1, 2), 3), "[[1 2] 3]"},
		{N(1, N(N(2, 3), 4)), "[1 [2 3] 4]"},
		{N(1000, N(1, 2), 3), "[1.000 [1 2] 3]"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{
		"[1 [2 3]]",
		"[[1 2] [3 4] 5]",
		"12345678901234567890123",
		"[8 [1 0] 8 [1 6 [5 [0 7] 4 0 6] [0 6] 9 2 [0 2] [4 0 6] 0 7] 9 2 0 1]",
		"[[[1 2] 3] 4]",
	} {
		n, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		again, err := Parse(n.String())
		if err != nil {
			t.Fatalf("reparse of %s: %v", n, err)
		}
		if !Eq(n, again) {
			t.Errorf("%q reparsed as %s", input, again)
		}
	}
}

func TestReaderStream(t *testing.T) {
	rr := NewReader(strings.NewReader("1 [2 3]\n[4 5 6][7 8]  "))
	var got []string
	for {
		n, err := rr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		got = append(got, n.String())
	}
	if want := "1|[2 3]|[4 5 6]|[7 8]"; strings.Join(got, "|") != want {
		t.Fatalf("read %v, want %s", got, want)
	}

	rr = NewReader(strings.NewReader("[1 2] [3"))
	if _, err := rr.Read(); err != nil {
		t.Fatal(err)
	}
	if _, err := rr.Read(); errors.Cause(err) != ErrParse {
		t.Fatalf("unterminated cell: %v", err)
	}
}
