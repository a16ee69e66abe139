package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
	"github.com/siriart/billing-admin/internal/pkg/cipher"
)

// UserService implements user CRUD. Passwords enter as plaintext, are
// encrypted with the process cipher before persistence, and are stripped
// from everything the service returns.
type UserService struct {
	repo    ports.UserRepository
	cipher  *cipher.Cipher
	changes ports.ChangeLogger
}

func NewUserService(repo ports.UserRepository, c *cipher.Cipher, changes ports.ChangeLogger) *UserService {
	return &UserService{repo: repo, cipher: c, changes: changes}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Create(ctx context.Context, user domain.User, plainPassword string) (*domain.User, error) {
	if user.Name == "" || user.Email == "" || plainPassword == "" {
		return nil, domain.ErrMissingFields
	}

	encrypted, err := s.cipher.Encrypt(plainPassword)
	if err != nil {
		return nil, err
	}
	user.Password = encrypted
	if user.Role == "" {
		user.Role = domain.RoleStaff
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("users", "create").Inc()
	s.changes.Logf("users", "New user created: %s (ID: %s)", created.Name, created.ID)

	sanitized := created.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Update(ctx context.Context, id string, apply func(*domain.User), plainPassword string) (*domain.User, error) {
	var encrypted string
	if plainPassword != "" {
		var err error
		encrypted, err = s.cipher.Encrypt(plainPassword)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, func(u *domain.User) {
		apply(u)
		if encrypted != "" {
			u.Password = encrypted
		}
	})
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("users", "update").Inc()
	s.changes.Logf("users", "User updated: %s (ID: %s)", updated.Name, updated.ID)

	sanitized := updated.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("users", "delete").Inc()
	s.changes.Logf("users", "User deleted: %s (ID: %s)", deleted.Name, deleted.ID)
	return nil
}
