package refraction

import "github.com/df07/go-raycaster/pkg/core"

// OpKind is the kind of a fragment operation
type OpKind int

const (
	OpPush OpKind = iota
	OpPop
)

// Op is a single stack operation recorded on behalf of owner
type Op struct {
	Kind  OpKind
	Owner core.ObjectID
	IOR   float64
}

// Fragment is an ordered list of stack operations that a scattered ray
// carries onto its continuing path. The zero value is empty.
//
// A Fragment is owned by whoever holds it; appending to a copy never changes
// the original.
type Fragment struct {
	ops []Op
}

// Push returns a fragment with an extra push of ior for owner
func (f Fragment) Push(owner core.ObjectID, ior float64) Fragment {
	return f.with(Op{Kind: OpPush, Owner: owner, IOR: ior})
}

// Pop returns a fragment with an extra pop for owner
func (f Fragment) Pop(owner core.ObjectID) Fragment {
	return f.with(Op{Kind: OpPop, Owner: owner})
}

// Concat returns f followed by other
func (f Fragment) Concat(other Fragment) Fragment {
	if len(other.ops) == 0 {
		return f
	}
	if len(f.ops) == 0 {
		return other
	}
	ops := make([]Op, 0, len(f.ops)+len(other.ops))
	ops = append(ops, f.ops...)
	ops = append(ops, other.ops...)
	return Fragment{ops: ops}
}

// Empty reports whether the fragment holds no operations
func (f Fragment) Empty() bool {
	return len(f.ops) == 0
}

// Ops returns a copy of the recorded operations
func (f Fragment) Ops() []Op {
	out := make([]Op, len(f.ops))
	copy(out, f.ops)
	return out
}

func (f Fragment) with(op Op) Fragment {
	ops := make([]Op, len(f.ops), len(f.ops)+1)
	copy(ops, f.ops)
	return Fragment{ops: append(ops, op)}
}
