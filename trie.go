package trie

import (
	"sort"
	"strings"
)

// Index is a trie mapping string keys to sets of values. It supports exact,
// prefix and automaton driven lookups.
//
// Index is not safe for concurrent use. Callers sharing an Index between
// goroutines must serialise access themselves.
type Index[V comparable] struct {
	root *node[V]
}

// node is a node in an Index. values holds the values stored for the exact key
// spelled by the edges from the root to this node.
type node[V comparable] struct {
	children map[rune]*node[V]
	values   map[V]struct{}
}

func newNode[V comparable]() *node[V] {
	return &node[V]{
		children: make(map[rune]*node[V]),
		values:   make(map[V]struct{}),
	}
}

func (n *node[V]) isEmpty() bool {
	return len(n.children) == 0 && len(n.values) == 0
}

// step is one edge on a recorded path from the root.
type step[V comparable] struct {
	parent *node[V]
	edge   rune
}

// New creates a new empty index.
func New[V comparable]() *Index[V] {
	return &Index[V]{root: newNode[V]()}
}

// Clear discards every key and value.
func (t *Index[V]) Clear() {
	t.root = newNode[V]()
}

// IsEmpty reports whether no values are stored.
func (t *Index[V]) IsEmpty() bool {
	return t.root.isEmpty()
}

// Size returns the number of values stored, summed over all keys. A value
// stored under two keys counts twice.
func (t *Index[V]) Size() int {
	size := 0
	stack := []*node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size += len(n.values)
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return size
}

// PutAll adds values to the set stored for key, creating the key if needed.
// It reports whether the set grew.
func (t *Index[V]) PutAll(key string, values ...V) bool {
	if len(values) == 0 {
		return false
	}
	current := t.root
	for _, character := range key {
		child, ok := current.children[character]
		if !ok {
			child = newNode[V]()
			current.children[character] = child
		}
		current = child
	}
	grew := false
	for _, v := range values {
		if _, ok := current.values[v]; !ok {
			current.values[v] = struct{}{}
			grew = true
		}
	}
	return grew
}

// GetAll returns the values stored for exactly key.
func (t *Index[V]) GetAll(key string) Set[V] {
	n := t.find(key)
	if n == nil {
		return Set[V]{}
	}
	return copySet(n.values)
}

// GetAny returns the values of every key that starts with fragment, including
// fragment itself.
func (t *Index[V]) GetAny(fragment string) Set[V] {
	n := t.find(fragment)
	if n == nil {
		return Set[V]{}
	}
	result := Set[V]{}
	collectSubtree(n, result)
	return result
}

// GetMatches walks the index together with matcher and returns the values of
// every subtree whose automaton state is accepted. Rejected branches are
// pruned. An accepted state means every completion of the consumed prefix
// matches, so the whole subtree below it is admitted.
//
// GetMatches panics if matcher is nil, or if it steps to a nil state.
func (t *Index[V]) GetMatches(matcher Automaton) Set[V] {
	if matcher == nil {
		panic("trie: nil automaton")
	}
	type frame struct {
		node  *node[V]
		state Automaton
	}
	result := Set[V]{}
	stack := []frame{{t.root, matcher}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case f.state.IsAccepted():
			collectSubtree(f.node, result)
		case f.state.IsRejected():
		default:
			for edge, child := range f.node.children {
				next := f.state.Step(edge)
				if next == nil {
					panic("trie: automaton stepped to a nil state")
				}
				stack = append(stack, frame{child, next})
			}
		}
	}
	return result
}

// RemoveAll removes key and returns the values it held.
func (t *Index[V]) RemoveAll(key string) Set[V] {
	path, n := t.path(key)
	if n == nil {
		return Set[V]{}
	}
	removed := Set[V](n.values)
	n.values = make(map[V]struct{})
	prune(path, n)
	return removed
}

// Remove removes values from the set stored for exactly key. It reports whether
// any of them were present.
func (t *Index[V]) Remove(key string, values ...V) bool {
	path, n := t.path(key)
	if n == nil {
		return false
	}
	removed := false
	for _, v := range values {
		if _, ok := n.values[v]; ok {
			delete(n.values, v)
			removed = true
		}
	}
	if removed {
		prune(path, n)
	}
	return removed
}

// RemoveValues removes values from every key in the index. It reports whether
// any key lost a value.
func (t *Index[V]) RemoveValues(values ...V) bool {
	if len(values) == 0 {
		return false
	}
	type frame struct {
		node    *node[V]
		parent  *node[V]
		edge    rune
		visited bool
	}
	removed := false
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if !f.visited {
			f.visited = true
			for _, v := range values {
				if _, ok := f.node.values[v]; ok {
					delete(f.node.values, v)
					removed = true
				}
			}
			n := f.node
			for edge, child := range n.children {
				stack = append(stack, frame{node: child, parent: n, edge: edge})
			}
			continue
		}
		// children done
		stack = stack[:len(stack)-1]
		if f.parent != nil && f.node.isEmpty() {
			delete(f.parent.children, f.edge)
		}
	}
	return removed
}

// Keys returns, in lexical order, every key starting with fragment that holds
// at least one value.
func (t *Index[V]) Keys(fragment string) []string {
	var keys []string
	t.walk(fragment, func(key string, _ *node[V]) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk calls fn for every key holding values, in lexical order, until fn
// returns false. fn receives a copy of the key's values and must not mutate
// the index.
func (t *Index[V]) Walk(fn func(key string, values Set[V]) bool) {
	t.walk("", func(key string, n *node[V]) bool {
		return fn(key, copySet(n.values))
	})
}

func (t *Index[V]) walk(fragment string, fn func(key string, n *node[V]) bool) {
	start := t.find(fragment)
	if start == nil {
		return
	}
	type frame struct {
		node *node[V]
		key  string
	}
	stack := []frame{{start, fragment}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(f.node.values) > 0 && !fn(f.key, f.node) {
			return
		}
		edges := make([]rune, 0, len(f.node.children))
		for edge := range f.node.children {
			edges = append(edges, edge)
		}
		// reverse order so the smallest edge is popped first
		sort.Slice(edges, func(i, j int) bool { return edges[i] > edges[j] })
		for _, edge := range edges {
			var b strings.Builder
			b.Grow(len(f.key) + 4)
			b.WriteString(f.key)
			b.WriteRune(edge)
			stack = append(stack, frame{f.node.children[edge], b.String()})
		}
	}
}

// find returns the node reached by consuming key, or nil.
func (t *Index[V]) find(key string) *node[V] {
	current := t.root
	for _, character := range key {
		next, ok := current.children[character]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// path is like find but also records the edges taken.
func (t *Index[V]) path(key string) ([]step[V], *node[V]) {
	path := make([]step[V], 0, len(key))
	current := t.root
	for _, character := range key {
		next, ok := current.children[character]
		if !ok {
			return nil, nil
		}
		path = append(path, step[V]{parent: current, edge: character})
		current = next
	}
	return path, current
}

// prune removes empty nodes from the end of path back towards the root.
func prune[V comparable](path []step[V], last *node[V]) {
	child := last
	for i := len(path) - 1; i >= 0; i-- {
		if !child.isEmpty() {
			return
		}
		delete(path[i].parent.children, path[i].edge)
		child = path[i].parent
	}
}

// collectSubtree adds the values of n and all its descendants to result.
func collectSubtree[V comparable](n *node[V], result Set[V]) {
	stack := []*node[V]{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range current.values {
			result[v] = struct{}{}
		}
		for _, child := range current.children {
			stack = append(stack, child)
		}
	}
}
