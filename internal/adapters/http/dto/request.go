package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
	"github.com/jsamuelsen11/college-predictor/internal/domain/college"
	"github.com/jsamuelsen11/college-predictor/internal/domain/registration"
)

const (
	// MsgPredictMissing is returned whenever any of the three mandatory
	// prediction inputs is absent.
	MsgPredictMissing = "Missing required fields: min_cutoff, max_cutoff, category"

	// MsgRegisterMissing is returned when a registration field is absent.
	MsgRegisterMissing = "Missing required fields"
)

// PredictRequest represents the JSON body for POST /predict. Pointers
// distinguish an absent or null value from a zero cutoff.
type PredictRequest struct {
	MinCutoff *float64 `json:"min_cutoff"`
	MaxCutoff *float64 `json:"max_cutoff"`
	Category  *string  `json:"category"`
	Branch    *string  `json:"branch,omitempty"`
	District  *string  `json:"district,omitempty"`
}

// Validate checks that the mandatory fields are present. A blank category
// counts as missing.
// Returns a *domain.ValidationError if any checks fail.
func (r *PredictRequest) Validate() error {
	fields := make(map[string]string)

	if r.MinCutoff == nil {
		fields["min_cutoff"] = domain.MsgRequired
	}
	if r.MaxCutoff == nil {
		fields["max_cutoff"] = domain.MsgRequired
	}
	if r.Category == nil || strings.TrimSpace(*r.Category) == "" {
		fields["category"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: MsgPredictMissing, Fields: fields}
	}
	return nil
}

// ToFilter maps the request to a domain filter. Call Validate first.
func (r *PredictRequest) ToFilter() college.Filter {
	f := college.Filter{}
	if r.MinCutoff != nil {
		f.MinCutoff = *r.MinCutoff
	}
	if r.MaxCutoff != nil {
		f.MaxCutoff = *r.MaxCutoff
	}
	if r.Category != nil {
		f.Category = *r.Category
	}
	if r.Branch != nil {
		f.Branch = *r.Branch
	}
	if r.District != nil {
		f.District = *r.District
	}
	return f.Normalize()
}

// RegisterRequest represents the JSON body for POST /register.
type RegisterRequest struct {
	Name   string `json:"name" validate:"required"`
	Age    *int   `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required"`
	School string `json:"school" validate:"required"`
	DOB    string `json:"dob" validate:"required,datetime=2006-01-02"`
	Mobile string `json:"mobile" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate trims text fields and checks them against the struct tags.
// Absent fields produce MsgRegisterMissing; malformed ones produce a
// generic validation message. Both carry per-field details.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.TrimSpace(r.Gender)
	r.School = strings.TrimSpace(r.School)
	r.DOB = strings.TrimSpace(r.DOB)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.Email = strings.TrimSpace(r.Email)

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Message: MsgValidationFailed}
	}

	fields := make(map[string]string, len(verrs))
	missing := false
	for _, fe := range verrs {
		fields[fe.Field()] = fieldErrorMessage(fe)
		if fe.Tag() == "required" {
			missing = true
		}
	}

	msg := MsgValidationFailed
	if missing {
		msg = MsgRegisterMissing
	}
	return &domain.ValidationError{Message: msg, Fields: fields}
}

// ToUser maps the request to a domain user. Call Validate first.
func (r *RegisterRequest) ToUser() *registration.User {
	u := &registration.User{
		Name:   r.Name,
		Gender: r.Gender,
		School: r.School,
		DOB:    r.DOB,
		Mobile: r.Mobile,
		Email:  r.Email,
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	return u
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return domain.MsgInvalid
	}
}
