package objects

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Attribute is one key/value pair of free-form node or edge data.
type Attribute struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Node is a generic attributed vertex record. Key defaults to a fresh
// NANOID when the caller does not supply one.
type Node struct {
	Key        string      `json:"_key,omitempty"`
	Name       string      `json:"name"`
	Collection string      `json:"collection,omitempty"`
	Group      string      `json:"group,omitempty"`
	Data       []Attribute `json:"data,omitempty"`
}

// Edge is a generic attributed edge record connecting two vertices.
type Edge struct {
	Key        string      `json:"_key,omitempty"`
	Name       string      `json:"name"`
	Collection string      `json:"collection,omitempty"`
	Source     string      `json:"_from"`
	Target     string      `json:"_to"`
	Data       []Attribute `json:"data,omitempty"`
}

const (
	// DefaultNodeCollection receives nodes that name no collection.
	DefaultNodeCollection = "Objects"
	// DefaultEdgeCollection receives edges that name no collection.
	DefaultEdgeCollection = "EDGES"
)

// NewKey generates a short random document key. No referential integrity
// is enforced at this layer; the database owns uniqueness.
func NewKey() string {
	return gonanoid.Must()
}

// Normalize fills defaults on a node before insertion.
func (n *Node) Normalize() {
	if n.Key == "" {
		n.Key = NewKey()
	}
	if n.Collection == "" {
		n.Collection = DefaultNodeCollection
	}
	if n.Name == "" {
		n.Name = n.Key
	}
}

// Normalize fills defaults on an edge before insertion.
func (e *Edge) Normalize() {
	if e.Key == "" {
		e.Key = NewKey()
	}
	if e.Collection == "" {
		e.Collection = DefaultEdgeCollection
	}
	if e.Name == "" {
		e.Name = e.Key
	}
}
