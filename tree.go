// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import "slices"

// insertChild and removeChild are the only places that change child lists
// and parent pointers. detach wraps removeChild for layers leaving the
// document; moves use removeChild directly and keep their selection.

// insertChild inserts child into parent at index, clamped to the child
// count. The caller has validated the move.
func insertChild(parent, child Layer, index int) {
	p := parent.base()
	index = max(0, min(index, len(p.children)))
	p.children = slices.Insert(p.children, index, child)
	child.base().parent = parent

	p.notify(AttrChildren)
	child.base().notify(AttrParent)
}

// removeChild detaches child from parent and returns its former index.
func removeChild(parent, child Layer) (int, error) {
	p := parent.base()
	i := indexOf(parent, child)
	if i < 0 {
		return -1, ErrNotChild
	}
	p.children = slices.Delete(p.children, i, i+1)
	c := child.base()
	c.parent = nil

	p.notify(AttrChildren)
	c.notify(AttrParent)
	return i, nil
}

// detach deselects child and its subtree, then removes it from parent.
// A detached layer never carries a selection back into the tree.
func detach(parent, child Layer) (int, error) {
	if indexOf(parent, child) < 0 {
		return -1, ErrNotChild
	}
	walk(child, func(l Layer) bool {
		l.SetSelected(false)
		return true
	})
	return removeChild(parent, child)
}

// indexOf returns the index of child in parent's child list, or -1.
func indexOf(parent, child Layer) int {
	return slices.Index(parent.base().children, child)
}

// isAncestor reports whether a is b or one of b's ancestors.
func isAncestor(a, b Layer) bool {
	for l := b; l != nil; l = l.Parent() {
		if l == a {
			return true
		}
	}
	return false
}

// rootOf returns the topmost ancestor of l.
func rootOf(l Layer) Layer {
	for l.Parent() != nil {
		l = l.Parent()
	}
	return l
}

// documentOf returns the document l is attached to, or nil.
func documentOf(l Layer) *Document {
	if l == nil {
		return nil
	}
	d, _ := rootOf(l).(*Document)
	return d
}

// walk visits l and its descendants in pre-order until yield returns false.
func walk(l Layer, yield func(Layer) bool) bool {
	if !yield(l) {
		return false
	}
	for _, c := range l.base().children {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}
