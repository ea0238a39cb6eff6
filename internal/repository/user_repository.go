package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airflow/reservations/internal/model"
)

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an insert or update collides with the
// unique index on users.email.
var ErrEmailExists = errors.New("email already exists")

// UserRepo provides access to the users table. Password columns hold
// bcrypt hashes; callers are responsible for hashing before Create or
// Update.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ Repository[model.User] = (*UserRepo)(nil)

// GetAll returns every user.
func (r *UserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id_PK, name, last_name, email, password, is_super_user, created_at FROM users`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsSuperUser, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID fetches a user by id, returning ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id_PK, name, last_name, email, password, is_super_user, created_at FROM users WHERE id_PK = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsSuperUser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by exact email. The service layer
// normalizes emails before they reach this method.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id_PK, name, last_name, email, password, is_super_user, created_at FROM users WHERE email = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.LastName, &u.Email, &u.Password, &u.IsSuperUser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a user. On success the generated id is populated on u.
// A collision on the email unique index surfaces as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (name, last_name, email, password, is_super_user, created_at)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Name, u.LastName, u.Email, u.Password, u.IsSuperUser, u.CreatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// Update overwrites all mutable columns of the addressed user. Updating
// a nonexistent id changes nothing and returns nil.
func (r *UserRepo) Update(ctx context.Context, id uint64, u *model.User) error {
	const q = `UPDATE users
	           SET name = ?, last_name = ?, email = ?, password = ?, is_super_user = ?, created_at = ?
	           WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, u.Name, u.LastName, u.Email, u.Password, u.IsSuperUser, u.CreatedAt, id)
	if err != nil && isDuplicateKey(err) {
		return ErrEmailExists
	}
	return err
}

// Delete removes a user row. Deleting a nonexistent id is a no-op.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM users WHERE id_PK = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
