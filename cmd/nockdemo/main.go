package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	nock "github.com/metaleap/gonock"
)

type noun = nock.Noun

// decrement core: counts up from 0 until the successor equals the subject
const srcDec = `[8 [1 0] 8 [1 6 [5 [0 7] 4 0 6] [0 6] 9 2 [0 2] [4 0 6] 0 7] 9 2 0 1]`

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if os.Getenv("NOCKDEMO_TRACE") != "" {
		log.SetLevel(logrus.TraceLevel)
	}
	interp := &nock.Interp{
		Log: log,
		OnHintStatic: func(subj noun, tag noun) {
			log.WithField("tag", tag.String()).Info("hint")
		},
	}

	out := func(subj noun, formula noun) {
		ret, err := interp.Nock(subj, formula)
		if err != nil {
			fmt.Printf("*[%s %s]\t->\tcrash: %v\n", subj, formula, err)
			return
		}
		fmt.Printf("*[%s %s]\t->\t%s\n", subj, formula, ret)
	}

	ø := nock.N(0)
	out(ø, nock.N(nock.OP_CONST, 234))
	out(ø, nock.N(nock.OP_ISCELL, nock.OP_CONST, 123))
	out(ø, nock.N(nock.OP_ISCELL, nock.OP_CONST, 123, 321))
	out(ø, nock.N(nock.OP_IF, nock.N(nock.OP_CONST, 1), nock.N(nock.OP_CONST, 123), nock.N(nock.OP_CONST, 321)))

	sometree := nock.N(nock.N(44, 55), 66, 414, 515)
	for i := 1; i < 16; i++ {
		if i < 8 || i == 14 || i == 15 {
			out(sometree, nock.N(nock.OP_AXIS, i))
		}
	}

	out(ø, nock.N(nock.OP_EQ, nock.N(nock.OP_CONST, 321), nock.N(nock.OP_CONST, 321)))
	out(ø, nock.N(nock.OP_INCR, nock.OP_CONST, "18.446.744.073.709.551.615"))
	out(ø, nock.N(nock.OP_HINT, 1953718630, nock.OP_CONST, 22))

	timestarted := time.Now()
	ret, err := interp.Nock(nock.N(10000), nock.N(srcDec))
	if err != nil {
		log.WithError(err).Fatal("decrement")
	}
	fmt.Printf("dec 10.000 -> %s in %s\n", ret, time.Since(timestarted))
}
