package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// RegistrationHandler handles the public registration form.
type RegistrationHandler struct {
	svc ports.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler with the given service port.
func NewRegistrationHandler(svc ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Register handles POST /register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Register(r.Context(), req.ToUser()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: dto.MsgUserRegistered})
}
