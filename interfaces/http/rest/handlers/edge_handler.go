package handlers

import (
	"net/http"

	"go.uber.org/zap"

	pkgerrors "cortex-backend/pkg/errors"
)

// EdgeHandler handles edge collection requests.
type EdgeHandler struct {
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		errors: pkgerrors.NewErrorHandler(logger),
		logger: logger,
	}
}

// ListEdges handles GET /objects/edges. Listing relationship collection
// metadata is not yet supported.
func (h *EdgeHandler) ListEdges(w http.ResponseWriter, r *http.Request) {
	h.errors.Handle(w, r, pkgerrors.NewNotImplementedError("Listing relationship collections"))
}
