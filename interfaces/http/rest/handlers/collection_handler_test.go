package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"cortex-backend/application/ports"
)

func urlParamRequest(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListCollections(t *testing.T) {
	store := newRecordingTenantStore()
	store.collections = []ports.CollectionMeta{
		{Name: "Customers"},
		{Name: "EDGES", Edge: true},
	}
	handler := NewCollectionHandler(zap.NewNop())

	req := withSession(httptest.NewRequest(http.MethodGet, "/objects/collections", nil), store)
	rec := httptest.NewRecorder()
	handler.ListCollections(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customers")
	assert.Contains(t, rec.Body.String(), "EDGES")
}

func TestListCollectionsWithoutSession(t *testing.T) {
	handler := NewCollectionHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ListCollections(rec, httptest.NewRequest(http.MethodGet, "/objects/collections", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCollectionDocuments(t *testing.T) {
	store := newRecordingTenantStore()
	store.documents["Customers"] = []ports.Document{
		{"_key": "c1", "name": "ACME"},
	}
	handler := NewCollectionHandler(zap.NewNop())

	req := withSession(httptest.NewRequest(http.MethodGet, "/objects/collections/Customers", nil), store)
	req = urlParamRequest(req, "collectionID", "Customers")
	rec := httptest.NewRecorder()
	handler.GetCollectionDocuments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACME")
}

func TestGetCollectionInfo(t *testing.T) {
	store := newRecordingTenantStore()
	handler := NewCollectionHandler(zap.NewNop())

	req := withSession(httptest.NewRequest(http.MethodGet, "/objects/collections/Customers/info", nil), store)
	req = urlParamRequest(req, "collectionID", "Customers")
	rec := httptest.NewRecorder()
	handler.GetCollectionInfo(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customers")
}

func TestListDatabasesNotImplemented(t *testing.T) {
	handler := NewCollectionHandler(zap.NewNop())

	req := withSession(httptest.NewRequest(http.MethodGet, "/objects/databases", nil), newRecordingTenantStore())
	rec := httptest.NewRecorder()
	handler.ListDatabases(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "not yet supported")
}
