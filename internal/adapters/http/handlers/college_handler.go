// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/college-predictor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// CollegeHandler handles the prediction and lookup endpoints.
type CollegeHandler struct {
	svc ports.CollegeService
}

// NewCollegeHandler creates a new CollegeHandler with the given service port.
func NewCollegeHandler(svc ports.CollegeService) *CollegeHandler {
	return &CollegeHandler{svc: svc}
}

// Predict handles POST /predict.
func (h *CollegeHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	records, err := h.svc.PredictColleges(r.Context(), req.ToFilter())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPredictResponse(records))
}

// SampleBranches handles GET /colleges. The body is a bare JSON array.
func (h *CollegeHandler) SampleBranches(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.SampleBranches(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// Categories handles GET /categories.
func (h *CollegeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// Districts handles GET /districts.
func (h *CollegeHandler) Districts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.svc.Districts(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DistrictsResponse{Districts: districts})
}

// Branches handles GET /branches.
func (h *CollegeHandler) Branches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.svc.Branches(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BranchesResponse{Branches: branches})
}

// AllColleges handles GET /all-colleges.
func (h *CollegeHandler) AllColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.svc.AllColleges(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CollegesResponse{Colleges: colleges})
}

// Filters handles GET /filters. A failure still returns both keys as empty
// lists alongside the error message.
func (h *CollegeHandler) Filters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.svc.Filters(r.Context())
	if err != nil {
		writeJSON(w, dto.StatusFor(err), dto.FailedFiltersResponse(err))
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFiltersResponse(filters))
}
