package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"cortex-backend/pkg/auth"
	"cortex-backend/pkg/common"
	pkgerrors "cortex-backend/pkg/errors"
)

// GraphHandler handles graph-related HTTP requests
type GraphHandler struct {
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		errors: pkgerrors.NewErrorHandler(logger),
		logger: logger,
	}
}

// ListGraphs handles GET /graphs
func (h *GraphHandler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	graphs, err := session.Store.ListGraphs(r.Context())
	if err != nil {
		h.logger.Error("Failed to list graphs",
			zap.String("username", session.Account.Username),
			zap.Error(err),
		)
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, graphs)
}

// GetGraph handles GET /graphs/{graphID}
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	graphID := chi.URLParam(r, "graphID")
	if graphID == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Graph ID is required"))
		return
	}

	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	info, err := session.Store.GraphProperties(r.Context(), graphID)
	if err != nil {
		h.logger.Error("Failed to get graph",
			zap.String("graphID", graphID),
			zap.String("username", session.Account.Username),
			zap.Error(err),
		)
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, info)
}
