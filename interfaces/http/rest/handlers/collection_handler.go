package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cortex-backend/pkg/auth"
	"cortex-backend/pkg/common"
	pkgerrors "cortex-backend/pkg/errors"
)

// CollectionHandler exposes the tenant database's collections.
type CollectionHandler struct {
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		errors: pkgerrors.NewErrorHandler(logger),
		logger: logger,
	}
}

// ListCollections handles GET /objects/collections
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	metas, err := session.Store.ListCollections(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, metas)
}

// GetCollectionDocuments handles GET /objects/collections/{collectionID}
func (h *CollectionHandler) GetCollectionDocuments(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	if collectionID == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Collection ID is required"))
		return
	}

	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	docs, err := session.Store.Documents(r.Context(), collectionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, docs)
}

// GetCollectionInfo handles GET /objects/collections/{collectionID}/info
func (h *CollectionHandler) GetCollectionInfo(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	if collectionID == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Collection ID is required"))
		return
	}

	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	info, err := session.Store.CollectionInfo(r.Context(), collectionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, info)
}

// ListDatabases handles GET /objects/databases. Listing the databases an
// account can reach beyond its own is not yet supported.
func (h *CollectionHandler) ListDatabases(w http.ResponseWriter, r *http.Request) {
	h.errors.Handle(w, r, pkgerrors.NewNotImplementedError("Listing accessible databases"))
}
