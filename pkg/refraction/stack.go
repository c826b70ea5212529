// Package refraction tracks the media a ray path is currently travelling
// through.
//
// A Stack holds (owner, index of refraction) entries. The bottom entry is the
// ambient medium and is never removed. Entries are removed by owner identity
// rather than strictly by position, so paths that enter overlapping objects
// in one order and leave them in another keep the right indices.
package refraction

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/log"
)

var logger = log.New("refraction")

// DefaultAmbientIOR is the index of refraction of vacuum/air
const DefaultAmbientIOR = 1.0

// Entry is a single medium on the stack
type Entry struct {
	Owner core.ObjectID
	IOR   float64
}

// Stack is a per-path refraction index stack. It is not safe for concurrent
// use; every branch of a path owns its own copy (see Clone).
type Stack struct {
	entries []Entry
	owner   core.ObjectID
}

// NewStack creates a stack containing only the ambient medium
func NewStack(ambientIOR float64) *Stack {
	entries := make([]Entry, 1, 4)
	entries[0] = Entry{Owner: core.NoObject, IOR: ambientIOR}
	return &Stack{entries: entries}
}

// SetCurrentOwner sets the object that subsequent Push/Pop calls act on
func (s *Stack) SetCurrentOwner(id core.ObjectID) {
	s.owner = id
}

// CurrentOwner returns the object set by SetCurrentOwner
func (s *Stack) CurrentOwner() core.ObjectID {
	return s.owner
}

// Push enters the current owner's medium. It reports false, and does nothing,
// when no owner is set.
func (s *Stack) Push(ior float64) bool {
	return s.pushFor(s.owner, ior)
}

// Pop leaves the current owner's medium by removing the most recently pushed
// entry belonging to it. Entries of other owners are left in place. It
// reports false when nothing was removed.
func (s *Stack) Pop() bool {
	return s.popFor(s.owner)
}

// Top returns the index of refraction of the innermost medium
func (s *Stack) Top() float64 {
	return s.entries[len(s.entries)-1].IOR
}

// Ambient returns the index of refraction of the ambient medium
func (s *Stack) Ambient() float64 {
	return s.entries[0].IOR
}

// Outside returns the index of refraction a ray leaving the current owner
// would travel into: the innermost medium once the owner's entry is removed.
func (s *Stack) Outside() float64 {
	idx := s.find(s.owner)
	if idx < 0 {
		return s.Top()
	}
	// If the owner's entry is on top the medium beneath it is outside.
	// Otherwise an interleaved object is innermost and stays so after the exit.
	if idx == len(s.entries)-1 {
		return s.entries[idx-1].IOR
	}
	return s.Top()
}

// Contains reports whether the owner has at least one entry on the stack
func (s *Stack) Contains(owner core.ObjectID) bool {
	return s.find(owner) >= 0
}

// Depth returns the number of entries including the ambient one
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Entries returns a copy of the stack contents, ambient first
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clone returns an independent copy. The current owner is preserved.
func (s *Stack) Clone() *Stack {
	entries := make([]Entry, len(s.entries), cap(s.entries))
	copy(entries, s.entries)
	return &Stack{entries: entries, owner: s.owner}
}

// Splice applies a fragment's operations in order. The current owner is not
// changed.
func (s *Stack) Splice(f Fragment) {
	for _, op := range f.ops {
		switch op.Kind {
		case OpPush:
			s.pushFor(op.Owner, op.IOR)
		case OpPop:
			s.popFor(op.Owner)
		}
	}
}

func (s *Stack) pushFor(owner core.ObjectID, ior float64) bool {
	if owner == core.NoObject {
		logger.Warningf("push of IOR %.3f with no current owner ignored", ior)
		return false
	}
	s.entries = append(s.entries, Entry{Owner: owner, IOR: ior})
	return true
}

func (s *Stack) popFor(owner core.ObjectID) bool {
	if owner == core.NoObject {
		logger.Warning("pop with no current owner ignored; the ambient medium cannot be removed")
		return false
	}

	idx := s.find(owner)
	if idx < 0 {
		logger.Debugf("pop for object %d with no pushed entries ignored", owner)
		return false
	}

	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	return true
}

// find returns the index of the most recent entry of owner, or -1. The
// ambient entry at index 0 is never returned.
func (s *Stack) find(owner core.ObjectID) int {
	for i := len(s.entries) - 1; i > 0; i-- {
		if s.entries[i].Owner == owner {
			return i
		}
	}
	return -1
}
