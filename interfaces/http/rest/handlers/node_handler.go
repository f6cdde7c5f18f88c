package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"cortex-backend/domain/objects"
	"cortex-backend/pkg/auth"
	"cortex-backend/pkg/common"
	pkgerrors "cortex-backend/pkg/errors"
	"cortex-backend/pkg/utils"
)

const maxNodeBodyBytes = 1 << 20

// NodeHandler handles node document requests.
type NodeHandler struct {
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		errors: pkgerrors.NewErrorHandler(logger),
		logger: logger,
	}
}

// CreateNodeRequest represents the request body for inserting a node
type CreateNodeRequest struct {
	Key        string              `json:"_key,omitempty"`
	Name       string              `json:"name" validate:"required,min=1,max=200"`
	Collection string              `json:"collection,omitempty" validate:"omitempty,min=1,max=256"`
	Group      string              `json:"group,omitempty"`
	Data       []objects.Attribute `json:"data,omitempty"`
}

// CreateNode handles POST /objects/collections/nodes/
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req CreateNodeRequest
	if err := common.ParseJSONBody(r, &req, maxNodeBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	session, err := auth.GetSessionFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	node := objects.Node{
		Key:        req.Key,
		Name:       req.Name,
		Collection: req.Collection,
		Group:      req.Group,
		Data:       req.Data,
	}
	node.Normalize()

	stored, err := session.Store.InsertDocument(r.Context(), node.Collection, node)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Debug("Inserted node",
		zap.String("username", session.Account.Username),
		zap.String("collection", node.Collection),
	)
	common.RespondJSON(w, http.StatusCreated, stored)
}

// GetNode handles GET /objects/collections/nodes/{nodeKey}. Fetching a
// single node by key is not yet supported.
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	h.errors.Handle(w, r, pkgerrors.NewNotImplementedError("Fetching a node by key"))
}
