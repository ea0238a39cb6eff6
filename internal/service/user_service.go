package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/airflow/reservations/internal/model"
	"github.com/airflow/reservations/internal/repository"
	"github.com/airflow/reservations/internal/utils"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown
// email or a wrong password. The two cases are deliberately
// indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the user repository the service depends on.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

var _ UserStore = (*repository.UserRepo)(nil)

// UserService registers accounts and checks credentials. It is the
// only place plaintext passwords exist; everything below it sees bcrypt
// hashes.
type UserService struct {
	users UserStore
	cost  int
}

// NewUserService constructs a UserService. bcryptCost is passed through
// to the hash function.
func NewUserService(users UserStore, bcryptCost int) *UserService {
	return &UserService{users: users, cost: bcryptCost}
}

// Register normalizes the email, hashes the password and stores the
// user. A duplicate email surfaces as repository.ErrEmailExists.
func (s *UserService) Register(ctx context.Context, name, lastName, email, password string, superUser bool) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Name:        name,
		LastName:    lastName,
		Email:       email,
		Password:    hash,
		IsSuperUser: superUser,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate resolves the email and verifies the password against
// the stored hash.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
