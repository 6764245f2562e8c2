// Package registration holds the registration form entity.
package registration

import (
	"strings"

	"github.com/jsamuelsen11/college-predictor/internal/domain"
)

// User is a registration submitted through the public form. DOB is kept in
// its ISO calendar form (YYYY-MM-DD) exactly as stored.
type User struct {
	Name   string
	Age    int
	Gender string
	School string
	DOB    string
	Mobile string
	Email  string
}

// Validate checks business rules for the User entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", u.Name},
		{"gender", u.Gender},
		{"school", u.School},
		{"dob", u.DOB},
		{"mobile", u.Mobile},
		{"email", u.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.MissingFields(missing...)
	}

	if u.Age <= 0 {
		return &domain.ValidationError{
			Fields: map[string]string{"age": "must be positive"},
		}
	}
	return nil
}
