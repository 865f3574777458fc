package query

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/bitpage"
)

// Op is a node in a boolean expression DAG over bitpage.Bitmap leaves.
// It is a closed sum type: the only implementations are the unexported
// types in this file, sealed via the unexported isOp method, and
// Evaluate type-switches over them rather than dispatching through
// virtual calls.
type Op interface {
	// String renders the expression, e.g.
	// "(AND leaf(AllZeros) (NOT leaf(SparseZeroHole)))".
	String() string

	isOp()
}

type leafOp struct {
	bm *bitpage.Bitmap
}

type ownedLeafOp struct {
	bm *bitpage.Bitmap
}

type andOp struct {
	children []Op
}

type orOp struct {
	children []Op
}

type notOp struct {
	child Op
}

func (*leafOp) isOp()      {}
func (*ownedLeafOp) isOp() {}
func (*andOp) isOp()       {}
func (*orOp) isOp()        {}
func (*notOp) isOp()       {}

// NewLeaf returns an Op that reads bm without taking ownership: the
// caller retains bm and must not mutate it while the Op is being
// evaluated. Concurrent readers are safe; a concurrent mutator is not.
func NewLeaf(bm *bitpage.Bitmap) Op {
	return &leafOp{bm: bm}
}

// NewOwnedLeaf returns an Op that takes ownership of bm. When the
// evaluation's stream is dropped without being drained, any buffers
// owned by bm are freed along with it.
func NewOwnedLeaf(bm *bitpage.Bitmap) Op {
	return &ownedLeafOp{bm: bm}
}

// NewAnd builds an AND node over ops. A single operand simplifies to
// itself; zero operands is an input error.
func NewAnd(ops []Op) (Op, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyOperands
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return &andOp{children: append([]Op(nil), ops...)}, nil
}

// NewOr builds an OR node over ops. A single operand simplifies to
// itself; zero operands is an input error.
func NewOr(ops []Op) (Op, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyOperands
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return &orOp{children: append([]Op(nil), ops...)}, nil
}

// NewNot builds a NOT node over op. Not(Not(x)) is not eagerly
// simplified: the stream algebra itself cancels a double negation
// cheaply, so the planner doesn't need to.
func NewNot(op Op) Op {
	return &notOp{child: op}
}

func (o *leafOp) String() string {
	return fmt.Sprintf("leaf(%s)", o.bm.Tag())
}

func (o *ownedLeafOp) String() string {
	return fmt.Sprintf("ownedLeaf(%s)", o.bm.Tag())
}

func (o *andOp) String() string { return joinOp("AND", o.children) }
func (o *orOp) String() string  { return joinOp("OR", o.children) }

func (o *notOp) String() string {
	return fmt.Sprintf("(NOT %s)", o.child.String())
}

func joinOp(name string, children []Op) string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	buf.WriteString(name)
	for _, c := range children {
		buf.WriteByte(' ')
		buf.WriteString(c.String())
	}
	buf.WriteByte(')')
	return buf.String()
}
