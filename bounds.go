package bitpage

import "errors"

// ErrOutOfUniverse is returned by the Checked* accessors when an
// address falls outside a Bitmap's Bound. It is a caller's-mistake
// input error, not a logic violation. The unchecked
// SetBit/ClearBit/IsSet remain unconditionally defined for any
// (pageIndex, bit); these wrappers exist only for callers that want
// the boundary validated up front.
var ErrOutOfUniverse = errors.New("bitpage: address outside universe bound")

func inUniverse(bound Bound, pageIndex uint64, bit uint) bool {
	if bit >= PageBits {
		return false
	}
	if pageIndex < bound.LastPage {
		return true
	}
	return pageIndex == bound.LastPage && bit < bound.LastBit
}

// CheckedSetBit is SetBit, but returns ErrOutOfUniverse instead of
// mutating b when (pageIndex, bit) falls outside b.Bound().
func (b *Bitmap) CheckedSetBit(pageIndex uint64, bit uint) error {
	if !inUniverse(b.bound, pageIndex, bit) {
		return ErrOutOfUniverse
	}
	b.SetBit(pageIndex, bit)
	return nil
}

// CheckedClearBit is ClearBit, but returns ErrOutOfUniverse instead of
// mutating b when (pageIndex, bit) falls outside b.Bound().
func (b *Bitmap) CheckedClearBit(pageIndex uint64, bit uint) error {
	if !inUniverse(b.bound, pageIndex, bit) {
		return ErrOutOfUniverse
	}
	b.ClearBit(pageIndex, bit)
	return nil
}

// CheckedIsSet is IsSet, but returns ErrOutOfUniverse as its second
// result instead of a background-derived guess when (pageIndex, bit)
// falls outside b.Bound().
func (b *Bitmap) CheckedIsSet(pageIndex uint64, bit uint) (bool, error) {
	if !inUniverse(b.bound, pageIndex, bit) {
		return false, ErrOutOfUniverse
	}
	return b.IsSet(pageIndex, bit), nil
}
