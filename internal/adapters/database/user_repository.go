package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/college-predictor/internal/domain/registration"
	"github.com/jsamuelsen11/college-predictor/internal/platform/sqlbuild"
	"github.com/jsamuelsen11/college-predictor/internal/ports"
)

// Compile-time check that UserRepository implements ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

const tableUsers = "users"

// UserRepository stores registration form submissions.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository backed by store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// CreateUser inserts u into the users table.
func (r *UserRepository) CreateUser(ctx context.Context, u *registration.User) error {
	ins := &sqlbuild.Insert{
		Table:   tableUsers,
		Columns: []string{"name", "age", "gender", "school", "dob", "mobile", "email"},
		Values:  []any{u.Name, u.Age, u.Gender, u.School, u.DOB, u.Mobile, u.Email},
	}
	query, args, err := ins.Build(r.store.bindType)
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	return r.store.withConn(ctx, "CreateUser", func(ctx context.Context, conn *sqlx.Conn) error {
		_, err := conn.ExecContext(ctx, query, args...)
		return err
	})
}
