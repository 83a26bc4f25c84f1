package hierarchy

// Toggle flips the expanded flag of the node with the given id.
//
// The returned forest copies only the path from the root to the match;
// every other subtree is shared with f. When no node matches, f itself is
// returned together with false.
func Toggle(f Forest, id NodeID) (Forest, bool) {
	for i := range f {
		if f[i].ID == id {
			out := make(Forest, len(f))
			copy(out, f)
			out[i].Expanded = !out[i].Expanded
			return out, true
		}
		children, ok := Toggle(f[i].Children, id)
		if ok {
			out := make(Forest, len(f))
			copy(out, f)
			out[i].Children = children
			return out, true
		}
	}
	return f, false
}
