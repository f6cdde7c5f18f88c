package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cortex-backend/domain/objects"
)

func TestCreateNode(t *testing.T) {
	store := newRecordingTenantStore()
	handler := NewNodeHandler(zap.NewNop())

	body := `{"name":"Pump Assembly","collection":"Modules","data":[{"key":"weight","value":12.5}]}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/objects/collections/nodes/", strings.NewReader(body)), store)
	rec := httptest.NewRecorder()
	handler.CreateNode(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	inserted := store.inserted["Modules"]
	require.Len(t, inserted, 1)
	node, ok := inserted[0].(objects.Node)
	require.True(t, ok)
	assert.Equal(t, "Pump Assembly", node.Name)
	assert.Equal(t, "Modules", node.Collection)
	assert.NotEmpty(t, node.Key, "key must be generated when absent")
}

func TestCreateNodeDefaultCollection(t *testing.T) {
	store := newRecordingTenantStore()
	handler := NewNodeHandler(zap.NewNop())

	body := `{"name":"loose item"}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/objects/collections/nodes/", strings.NewReader(body)), store)
	rec := httptest.NewRecorder()
	handler.CreateNode(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, store.inserted[objects.DefaultNodeCollection], 1)
}

func TestCreateNodeInvalidBody(t *testing.T) {
	handler := NewNodeHandler(zap.NewNop())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "missing name", body: `{"collection":"Modules"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withSession(httptest.NewRequest(http.MethodPost, "/objects/collections/nodes/", strings.NewReader(tt.body)), newRecordingTenantStore())
			rec := httptest.NewRecorder()
			handler.CreateNode(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateNodeWithoutSession(t *testing.T) {
	handler := NewNodeHandler(zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/objects/collections/nodes/", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	handler.CreateNode(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetNodeNotImplemented(t *testing.T) {
	handler := NewNodeHandler(zap.NewNop())

	req := withSession(httptest.NewRequest(http.MethodGet, "/objects/collections/nodes/abc", nil), newRecordingTenantStore())
	rec := httptest.NewRecorder()
	handler.GetNode(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
