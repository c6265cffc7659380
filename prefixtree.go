package prefixtree

import (
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Tree is a prefix tree storing a set of strings, one level per rune.
// A Tree is not safe for concurrent use; callers must serialise access.
type Tree struct {
	root                   *node
	ignoreCase, normalised bool
}

// node is a node in a Tree which contains a map of runes to more node pointers.
// terminal marks that a stored string ends at this node, size caches the number
// of stored strings below it and is -1 when unknown.
type node struct {
	children map[rune]*node
	size     int
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node), size: -1}
}

// New creates a new empty tree. By default lookups are case sensitive and
// strings are not normalised.
func New() *Tree {
	t := new(Tree)
	t.root = newNode()
	t.CaseSensitive()
	t.WithoutNormalisation()
	return t
}

// CaseInsensitive sets the Tree to fold strings to lower case before indexing
// and lookup. Call it before the first insertion.
func (t *Tree) CaseInsensitive() *Tree {
	t.ignoreCase = true
	return t
}

// CaseSensitive sets the Tree to index strings as given.
func (t *Tree) CaseSensitive() *Tree {
	t.ignoreCase = false
	return t
}

// WithNormalisation sets the Tree to strip combining marks before indexing,
// so Jürgen is stored and found as Jurgen. Call it before the first insertion.
func (t *Tree) WithNormalisation() *Tree {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Tree not to normalise strings.
func (t *Tree) WithoutNormalisation() *Tree {
	t.normalised = false
	return t
}

// Add stores s with surrounding whitespace trimmed. It returns false if
// nothing is left to store.
func (t *Tree) Add(s string) bool {
	word, ok := t.key(s)
	if !ok || len(word) == 0 {
		return false
	}
	t.root.insert(word)
	return true
}

// AddAll adds values in order and stops at the first one that cannot be added.
// Values added before the failure stay in the tree.
func (t *Tree) AddAll(values ...string) bool {
	for _, v := range values {
		if !t.Add(v) {
			return false
		}
	}
	return true
}

// Contains reports whether s is stored. The empty string is always contained.
func (t *Tree) Contains(s string) bool {
	if len(s) == 0 {
		return true
	}
	word, ok := t.canonical(s)
	if !ok {
		return false
	}
	n := t.root.find([]rune(word))
	return n != nil && n.terminal
}

// ContainsAll reports whether every value is stored.
func (t *Tree) ContainsAll(values ...string) bool {
	return lo.EveryBy(values, t.Contains)
}

// Get returns the stored strings starting with prefix in ascending order.
// An empty prefix returns everything.
func (t *Tree) Get(prefix string) []string {
	if len(prefix) == 0 {
		return t.GetAll()
	}
	word, ok := t.canonical(prefix)
	if !ok {
		return []string{}
	}
	path := []rune(word)
	n := t.root.find(path)
	if n == nil {
		return []string{}
	}
	return n.collect(path, []string{})
}

// GetAll returns every stored string in ascending order.
func (t *Tree) GetAll() []string {
	return t.root.collect(nil, []string{})
}

// Remove deletes s with surrounding whitespace trimmed and prunes the branches
// left without strings. Removing the empty string is a no-op that succeeds;
// removing anything that is not stored returns false.
func (t *Tree) Remove(s string) bool {
	word, ok := t.key(s)
	if !ok {
		return false
	}
	if len(word) == 0 {
		return true
	}
	return t.root.remove(word)
}

// RemoveAll removes values in order and stops at the first one that is not
// stored. Values removed before the failure stay removed.
func (t *Tree) RemoveAll(values ...string) bool {
	for _, v := range values {
		if !t.Remove(v) {
			return false
		}
	}
	return true
}

// RetainAll removes every stored string that is not among values.
func (t *Tree) RetainAll(values ...string) bool {
	keep := lo.SliceToMap(values, func(v string) (string, struct{}) {
		word, _ := t.key(v)
		return string(word), struct{}{}
	})
	for _, s := range t.GetAll() {
		if _, ok := keep[s]; ok {
			continue
		}
		if !t.Remove(s) {
			return false
		}
	}
	return true
}

// Clear removes all strings.
func (t *Tree) Clear() {
	clear(t.root.children)
	t.root.terminal = false
	t.root.size = -1
}

// IsEmpty reports whether the tree stores no strings.
func (t *Tree) IsEmpty() bool {
	return len(t.root.children) == 0
}

// Len returns the number of stored strings. The count is cached until the
// next mutation.
func (t *Tree) Len() int {
	return t.root.count()
}

// Slice returns the stored strings in ascending order.
func (t *Tree) Slice() []string {
	return t.GetAll()
}

// AppendTo appends the stored strings in ascending order to dst.
func (t *Tree) AppendTo(dst []string) []string {
	return t.root.collect(nil, dst)
}

// All returns an iterator over the stored strings in ascending order. The
// strings are read when iteration starts; the tree must not be modified
// while iterating.
func (t *Tree) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range t.GetAll() {
			if !yield(s) {
				return
			}
		}
	}
}

// String returns the structure of the tree as nested maps, e.g. {e={i={}, n={d={}}}}.
func (t *Tree) String() string {
	var b strings.Builder
	t.root.format(&b)
	return b.String()
}

func (n *node) insert(word []rune) {
	n.size = -1
	if len(word) == 0 {
		n.terminal = true
		return
	}
	child, ok := n.children[word[0]]
	if !ok {
		child = newNode()
		n.children[word[0]] = child
	}
	child.insert(word[1:])
}

func (n *node) find(word []rune) *node {
	if len(word) == 0 {
		return n
	}
	child, ok := n.children[word[0]]
	if !ok {
		return nil
	}
	return child.find(word[1:])
}

func (n *node) remove(word []rune) bool {
	if len(word) == 0 {
		if !n.terminal {
			return false
		}
		n.terminal = false
		n.size = -1
		return true
	}
	child, ok := n.children[word[0]]
	if !ok || !child.remove(word[1:]) {
		return false
	}
	n.size = -1
	if len(child.children) == 0 && !child.terminal {
		delete(n.children, word[0])
	}
	return true
}

// collect appends the strings stored below n, each prefixed with path.
func (n *node) collect(path []rune, out []string) []string {
	if n.terminal {
		out = append(out, string(path))
	}
	for _, r := range n.keys() {
		out = n.children[r].collect(append(path, r), out)
	}
	return out
}

func (n *node) count() int {
	if n.size >= 0 {
		return n.size
	}
	size := 0
	if n.terminal {
		size++
	}
	for _, child := range n.children {
		size += child.count()
	}
	n.size = size
	return size
}

func (n *node) keys() []rune {
	keys := lo.Keys(n.children)
	slices.Sort(keys)
	return keys
}

func (n *node) format(b *strings.Builder) {
	b.WriteByte('{')
	for i, r := range n.keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteRune(r)
		b.WriteByte('=')
		n.children[r].format(b)
	}
	b.WriteByte('}')
}
