// Package datatree models the nested key/value tree swap paths resolve
// against. Every node is exactly one of two shapes: a Leaf holding a final
// string value, or a Branch mapping segment names to child nodes. The
// variant is closed; trees are validated once when decoded and treated as
// immutable afterwards, so they are safe to share across concurrent
// scanners.
package datatree

import "errors"

// Sentinel errors for tree construction and path resolution,
// distinguishable via errors.Is.
var (
	// ErrInvalidNode indicates decoded data that is neither a string value
	// nor a string-keyed mapping.
	ErrInvalidNode = errors.New("invalid data tree node")

	// ErrUnknownKey indicates a path segment absent from the branch being
	// walked.
	ErrUnknownKey = errors.New("unknown key")

	// ErrIndexIntoLeaf indicates a path that tries to descend past a leaf
	// value.
	ErrIndexIntoLeaf = errors.New("cannot index into leaf value")

	// ErrNotALeaf indicates a fully consumed path that stops on a branch
	// rather than a leaf value.
	ErrNotALeaf = errors.New("path does not resolve to a leaf value")
)

// Node is a single node of the data tree: either a Leaf or a Branch.
// The interface is sealed; no other implementations exist.
type Node interface {
	node()
}

// Leaf is a terminal node holding a final string value.
type Leaf string

// Branch is an internal node mapping segment names to children.
// Keys are unique per branch by construction.
type Branch map[string]Node

func (Leaf) node()   {}
func (Branch) node() {}
