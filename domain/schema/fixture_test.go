package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphDefinitionsUseKnownEdgeCollections(t *testing.T) {
	edges := make(map[string]bool, len(EdgeCollections))
	for _, name := range EdgeCollections {
		edges[name] = true
	}

	for _, def := range GraphDefinitions {
		assert.True(t, edges[def.Collection],
			"edge definition %q references an unknown edge collection", def.Collection)
	}
}

func TestGraphDefinitionsUseKnownVertexCollections(t *testing.T) {
	docs := make(map[string]bool, len(DocumentCollections))
	for _, name := range DocumentCollections {
		docs[name] = true
	}

	for _, def := range GraphDefinitions {
		for _, from := range def.From {
			assert.True(t, docs[from],
				"edge %q references unknown from-collection %q", def.Collection, from)
		}
		for _, to := range def.To {
			assert.True(t, docs[to],
				"edge %q references unknown to-collection %q", def.Collection, to)
		}
	}
}

func TestNoDuplicateCollections(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range DocumentCollections {
		assert.False(t, seen[name], "duplicate document collection %q", name)
		seen[name] = true
	}
	for _, name := range EdgeCollections {
		assert.False(t, seen[name], "collection %q listed twice", name)
		seen[name] = true
	}
}

func TestGraphName(t *testing.T) {
	assert.Equal(t, "MainGraph", GraphName)
}
