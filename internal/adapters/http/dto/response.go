// Package dto provides HTTP request/response data transfer objects and
// JSON error bodies for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
)

// MsgUserRegistered is the success message for POST /register.
const MsgUserRegistered = "User registered successfully"

// CollegeResponse is one grouped prediction row.
type CollegeResponse struct {
	CollegeName  string  `json:"college_name"`
	CollegeCode  string  `json:"college_code"`
	Branch       string  `json:"branch"`
	District     string  `json:"district"`
	Category     string  `json:"category"`
	MinCutoff    float64 `json:"min_cutoff"`
	MaxCutoff    float64 `json:"max_cutoff"`
	CollegeCount int64   `json:"college_count"`
}

// PredictResponse is the body of a successful POST /predict.
type PredictResponse struct {
	PredictedColleges []CollegeResponse `json:"predicted_colleges"`
}

// ToCollegeResponse converts a domain Record to an HTTP response DTO.
func ToCollegeResponse(rec *college.Record) CollegeResponse {
	return CollegeResponse{
		CollegeName:  rec.CollegeName,
		CollegeCode:  rec.CollegeCode,
		Branch:       rec.Branch,
		District:     rec.District,
		Category:     rec.Category,
		MinCutoff:    rec.LowestCutoff,
		MaxCutoff:    rec.HighestCutoff,
		CollegeCount: rec.Count,
	}
}

// ToPredictResponse converts the prediction result. An empty result
// serializes as [].
func ToPredictResponse(records []college.Record) PredictResponse {
	items := make([]CollegeResponse, len(records))
	for i := range records {
		items[i] = ToCollegeResponse(&records[i])
	}
	return PredictResponse{PredictedColleges: items}
}

// CategoriesResponse is the body of GET /categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// DistrictsResponse is the body of GET /districts.
type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

// BranchesResponse is the body of GET /branches.
type BranchesResponse struct {
	Branches []string `json:"branches"`
}

// CollegesResponse is the body of GET /all-colleges.
type CollegesResponse struct {
	Colleges []college.Row `json:"colleges"`
}

// FiltersResponse is the body of GET /filters. On failure both lists are
// empty and Error carries the client-facing message.
type FiltersResponse struct {
	Districts    []string `json:"districts"`
	CollegeCodes []string `json:"college_codes"`
	Error        string   `json:"error,omitempty"`
}

// ToFiltersResponse converts the domain filter choices.
func ToFiltersResponse(f *college.Filters) FiltersResponse {
	return FiltersResponse{
		Districts:    nonNil(f.Districts),
		CollegeCodes: nonNil(f.CollegeCodes),
	}
}

// FailedFiltersResponse builds the degraded /filters body for err.
func FailedFiltersResponse(err error) FiltersResponse {
	return FiltersResponse{
		Districts:    []string{},
		CollegeCodes: []string{},
		Error:        ErrorMessage(err),
	}
}

// Health status values.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of GET / and GET /health/live.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps each
// registered component to "ok" or its failure text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToReadinessResponse folds health check results into a readiness body and
// reports whether every check passed.
func ToReadinessResponse(results map[string]error) (ReadinessResponse, bool) {
	resp := ReadinessResponse{Status: StatusReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = StatusNotReady
			continue
		}
		resp.Checks[name] = StatusOK
	}
	return resp, resp.Status == StatusReady
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
