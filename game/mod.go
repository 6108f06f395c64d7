// Package game holds the Gobblet rules: pieces, reserve stacks, the 4x4 board and the
// move validator that turns one GameState into the next.
//
// Public coordinates are (column, row) with row 0 at the bottom. Nothing in this package
// logs or retries; every rejection is a *RuleError carrying one ErrorKind.
package game

// Snapshot empty marker and pair layout used on the wire.
const (
	pairOwner = 0
	pairSize  = 1
	pairLen   = 2
)
