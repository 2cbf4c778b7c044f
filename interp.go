package nock

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	OP_AXIS uint64 = iota
	OP_CONST
	OP_EVAL
	OP_ISCELL
	OP_INCR
	OP_EQ
	OP_IF
	OP_COMPOSE
	OP_PUSH
	OP_CALL
	OP_HINT
)

// ErrNock is the cause of every evaluation failure, see `errors.Is`.
var ErrNock = errors.New("nock: evaluation failed")

// Interp evaluates formulas. Its fields are only read during evaluation, so
// one Interp serves concurrent `Nock` calls. The zero value is ready to use.
type Interp struct {
	// OnHintStatic observes `[10 [tag formula]]` for atomic tags.
	OnHintStatic func(subj Noun, tag Noun)
	// OnHintDynamic observes `[10 [[tag clue] formula]]` with clue evaluated
	// against the subject. Clues are only evaluated when this is set, and a
	// crashing clue is dropped. Note a diverging clue still diverges.
	OnHintDynamic func(subj Noun, tag Noun, clue Noun)

	// MaxDepth bounds the nesting of non-tail sub-evaluations; 0 means no
	// bound other than the Go stack.
	MaxDepth int

	// Log defaults to the logrus standard logger. Steps trace at TraceLevel,
	// failures at DebugLevel.
	Log *logrus.Logger
}

// Nock evaluates *[subject formula] with a zero `Interp`.
func Nock(subject Noun, formula Noun) (Noun, error) {
	var interp Interp
	return interp.Nock(subject, formula)
}

// Nock evaluates *[subject formula]. Any failure anywhere aborts the whole
// evaluation with an error caused by `ErrNock`.
func (me *Interp) Nock(subject Noun, formula Noun) (Noun, error) {
	ret, err := me.nock(subject, formula, 0, me.logger().IsLevelEnabled(logrus.TraceLevel))
	if err != nil {
		me.tracer().WithError(err).Debug("nock crashed")
		return nil, err
	}
	return ret, nil
}

func errShape(opcode uint64, args Noun) error {
	return errors.Wrapf(ErrNock, "opcode %d: bad operand %s", opcode, args)
}

// nock loops on tail positions (2, 6, 7, 8, 9, 10) and only recurses for the
// intermediate nouns, so depth counts non-tail nesting.
func (me *Interp) nock(subj Noun, formula Noun, depth int, tracing bool) (Noun, error) {
	if me.MaxDepth > 0 && depth > me.MaxDepth {
		return nil, errors.Wrapf(ErrNock, "nesting deeper than %d", me.MaxDepth)
	}
	sub := func(s Noun, f Noun) (Noun, error) { return me.nock(s, f, depth+1, tracing) }
	for {
		sf, isformulacell := formula.(*NounCell)
		if !isformulacell {
			return nil, errors.Wrapf(ErrNock, "formula %s is an atom", formula)
		}
		op, args := sf.L, sf.R
		if _, isopcell := op.(*NounCell); isopcell { //?                     *[a [b c] d]
			l, err := sub(subj, op) //>                                      [*[a b c] *[a d]]
			if err != nil {
				return nil, err
			}
			r, err := sub(subj, args)
			if err != nil {
				return nil, err
			}
			return Cell(l, r), nil
		}
		opcode, err := UintFromNoun[uint64](op)
		if err != nil {
			return nil, errors.Wrapf(ErrNock, "opcode %s", op)
		}
		if tracing {
			me.tracer().WithFields(logrus.Fields{"op": opcode, "depth": depth}).Tracef("*[%s %s]", subj, formula)
		}
		argscell, isargscell := args.(*NounCell)
		switch opcode {
		case OP_AXIS: //?                                                    *[a 0 b]
			addr, isaddratom := args.(*NounAtom)
			if !isaddratom {
				return nil, errShape(opcode, args)
			}
			return Axis(addr, subj) //>                                      /[b a]
		case OP_CONST: //?                                                   *[a 1 b]
			return args, nil //>                                             b
		case OP_EVAL: //?                                                    *[a 2 b c]
			if !isargscell {
				return nil, errShape(opcode, args)
			}
			p, err := sub(subj, argscell.L)
			if err != nil {
				return nil, err
			}
			q, err := sub(subj, argscell.R)
			if err != nil {
				return nil, err
			}
			subj, formula = p, q //>                                         *[*[a b] *[a c]]
		case OP_ISCELL: //?                                                  *[a 3 b]
			p, err := sub(subj, args)
			if err != nil {
				return nil, err
			}
			return p.DepthTest(), nil //>                                    ?*[a b]
		case OP_INCR: //?                                                    *[a 4 b]
			p, err := sub(subj, args)
			if err != nil {
				return nil, err
			}
			pa, isatom := p.(*NounAtom)
			if !isatom {
				return nil, errors.Wrapf(ErrNock, "increment of cell %s", p)
			}
			return pa.Increment(), nil //>                                   +*[a b]
		case OP_EQ: //?                                                      *[a 5 b]
			p, err := sub(subj, args)
			if err != nil {
				return nil, err
			}
			pc, iscell := p.(*NounCell)
			if !iscell {
				return nil, errors.Wrapf(ErrNock, "equality test on atom %s", p)
			}
			return pc.Eq(), nil //>                                          =*[a b]
		case OP_IF: //?                                                      *[a 6 b c d]
			b, c, d, ok := Match122(args)
			if !ok {
				return nil, errShape(opcode, args)
			}
			p, err := sub(subj, b)
			if err != nil {
				return nil, err
			}
			if pa, isatom := p.(*NounAtom); isatom && pa.IsZero() {
				formula = c //>                                              *[a c]
			} else if isatom && pa.isOne() {
				formula = d //>                                              *[a d]
			} else {
				return nil, errors.Wrapf(ErrNock, "branch on non-loobean %s", p)
			}
		case OP_COMPOSE: //?                                                 *[a 7 b c]
			if !isargscell {
				return nil, errShape(opcode, args)
			}
			p, err := sub(subj, argscell.L)
			if err != nil {
				return nil, err
			}
			subj, formula = p, argscell.R //>                                *[*[a b] c]
		case OP_PUSH: //?                                                    *[a 8 b c]
			if !isargscell {
				return nil, errShape(opcode, args)
			}
			p, err := sub(subj, argscell.L)
			if err != nil {
				return nil, err
			}
			subj, formula = Cell(p, subj), argscell.R //>                    *[[*[a b] a] c]
		case OP_CALL: //?                                                    *[a 9 b c]
			if !isargscell {
				return nil, errShape(opcode, args)
			}
			p, err := sub(subj, argscell.R)
			if err != nil {
				return nil, err
			}
			addr, isaddratom := argscell.L.(*NounAtom)
			if !isaddratom {
				return nil, errShape(opcode, args)
			}
			q, err := Axis(addr, p)
			if err != nil {
				return nil, err
			}
			subj, formula = p, q //>                                         *[*[a c] /[b *[a c]]]
		case OP_HINT: //?                                                    *[a 10 b c]
			if !isargscell {
				return nil, errShape(opcode, args)
			}
			me.hint(subj, argscell.L, depth, tracing)
			formula = argscell.R //>                                         *[a c]
		default:
			return nil, errors.Wrapf(ErrNock, "unknown opcode %d", opcode)
		}
	}
}

// hint hands b to the observers; nothing it does reaches the evaluation.
func (me *Interp) hint(subj Noun, b Noun, depth int, tracing bool) {
	switch h := b.(type) {
	case *NounAtom:
		if me.OnHintStatic != nil {
			me.OnHintStatic(subj, h)
		}
	case *NounCell:
		if me.OnHintDynamic != nil {
			clue, err := me.nock(subj, h.R, depth+1, tracing)
			if err != nil {
				me.tracer().WithError(err).Debugf("dropping hint %s", h.L)
				return
			}
			me.OnHintDynamic(subj, h.L, clue)
		}
	}
}
