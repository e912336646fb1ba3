package datatree

import (
	"fmt"
	"strings"
)

// Resolve splits path on literal occurrences of separator and walks the
// tree segment by segment, returning the leaf value the path names.
//
// Segments are compared for exact equality; no whitespace trimming happens
// here. Callers are expected to trim whitespace around the whole path
// before resolving.
//
// Failures wrap one of ErrIndexIntoLeaf, ErrUnknownKey, or ErrNotALeaf and
// name the offending path.
func Resolve(root Node, path, separator string) (string, error) {
	node := root

	for _, segment := range strings.Split(path, separator) {
		branch, ok := node.(Branch)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrIndexIntoLeaf, path)
		}

		child, ok := branch[segment]
		if !ok {
			return "", fmt.Errorf("%w: %q in %q", ErrUnknownKey, segment, path)
		}
		node = child
	}

	leaf, ok := node.(Leaf)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotALeaf, path)
	}

	return string(leaf), nil
}
