// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"sort"
	"strings"
)

const (
	// DefaultSuggestLimit is used when Suggest is called with limit <= 0.
	DefaultSuggestLimit = 10

	// MaxSuggestLimit caps the number of suggestions per call.
	MaxSuggestLimit = 100
)

// Suggestion is one item name matching a prefix.
type Suggestion struct {
	Name string `json:"name"`

	// Row is the first row carrying Name, the row Lookup resolves to.
	Row int `json:"row"`

	// Count is the number of rows sharing Name.
	Count int `json:"count"`
}

// nameNode is a node of a rune trie keyed by lowercased item names.
type nameNode struct {
	children map[rune]*nameNode

	// entries are the distinct names ending here. Names differing only in
	// case share a node.
	entries []int
}

// nameTrie supports case-insensitive prefix search over item names. It is
// built once with the index and never mutated, so reads need no locking.
type nameTrie struct {
	root    *nameNode
	entries []Suggestion

	// ranked holds every entry in suggestion order, for the empty prefix.
	ranked []Suggestion
}

func newNameNode() *nameNode {
	return &nameNode{children: make(map[rune]*nameNode)}
}

func buildNameTrie(items []Item) *nameTrie {
	t := &nameTrie{root: newNameNode()}
	for row, item := range items {
		t.insert(item.Name, row)
	}

	t.ranked = make([]Suggestion, len(t.entries))
	copy(t.ranked, t.entries)
	sortSuggestions(t.ranked)
	return t
}

func (t *nameTrie) insert(name string, row int) {
	if name == "" {
		return
	}

	node := t.root
	for _, ch := range strings.ToLower(name) {
		child := node.children[ch]
		if child == nil {
			child = newNameNode()
			node.children[ch] = child
		}
		node = child
	}

	for _, e := range node.entries {
		if t.entries[e].Name == name {
			t.entries[e].Count++
			return
		}
	}
	node.entries = append(node.entries, len(t.entries))
	t.entries = append(t.entries, Suggestion{Name: name, Row: row, Count: 1})
}

// suggest returns names starting with prefix, case-insensitively, ordered
// by Count descending then Name ascending.
func (t *nameTrie) suggest(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if limit > MaxSuggestLimit {
		limit = MaxSuggestLimit
	}

	if prefix == "" {
		n := min(limit, len(t.ranked))
		out := make([]Suggestion, n)
		copy(out, t.ranked[:n])
		return out
	}

	node := t.root
	for _, ch := range strings.ToLower(prefix) {
		node = node.children[ch]
		if node == nil {
			return []Suggestion{}
		}
	}

	var found []Suggestion
	collectNames(node, t.entries, &found)

	sortSuggestions(found)

	if len(found) > limit {
		found = found[:limit]
	}
	if found == nil {
		found = []Suggestion{}
	}
	return found
}

// sortSuggestions orders by Count descending then Name ascending.
func sortSuggestions(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Count != s[j].Count {
			return s[i].Count > s[j].Count
		}
		return s[i].Name < s[j].Name
	})
}

func collectNames(node *nameNode, entries []Suggestion, out *[]Suggestion) {
	for _, e := range node.entries {
		*out = append(*out, entries[e])
	}
	for _, child := range node.children {
		collectNames(child, entries, out)
	}
}
