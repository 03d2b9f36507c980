// Package directory manages the two account partitions (users and admins)
// against the persistence store.
package directory

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"
)

type ServiceInterface interface {
	RegisterUser(ctx context.Context, username, password, phone string) error
	RegisterAdmin(ctx context.Context, username, password, adminCode string) error
	Authenticate(ctx context.Context, username, password string, role domain.Role) (domain.Account, error)
	ListUsers(ctx context.Context) ([]domain.UserAccount, error)
	UpdateUser(ctx context.Context, username, newPhone, newPassword string) error
	DeleteUser(ctx context.Context, username string) error
}

type Service struct {
	store     storage.Store
	adminCode string
	lg        *slog.Logger
}

func New(store storage.Store, adminCode string, lg *slog.Logger) *Service {
	return &Service{store: store, adminCode: adminCode, lg: lg}
}

// RegisterUser appends a new account to the users partition. Usernames are
// unique within the partition only; the same name may also exist as an admin.
func (s *Service) RegisterUser(ctx context.Context, username, password, phone string) error {
	if username == "" || password == "" || phone == "" {
		return fmt.Errorf("%w: username, password and phone are required", domain.ErrValidation)
	}
	err := s.store.UpdateAccounts(ctx, func(doc *domain.AccountsDoc) error {
		for _, u := range doc.Users {
			if u.Username == username {
				return domain.ErrDuplicateAccount
			}
		}
		doc.Users = append(doc.Users, domain.UserAccount{
			Username: username,
			Password: password,
			Phone:    phone,
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("user_registered", "username", username)
	return nil
}

// RegisterAdmin requires the shared registration code. The code is
// configuration, not a property of any account.
func (s *Service) RegisterAdmin(ctx context.Context, username, password, adminCode string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if adminCode != s.adminCode {
		return domain.ErrInvalidAdminCode
	}
	err := s.store.UpdateAccounts(ctx, func(doc *domain.AccountsDoc) error {
		for _, a := range doc.Admins {
			if a.Username == username {
				return domain.ErrDuplicateAccount
			}
		}
		doc.Admins = append(doc.Admins, domain.AdminAccount{
			Username: username,
			Password: password,
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("admin_registered", "username", username)
	return nil
}

// Authenticate scans the requested partition for an exact credential match.
// Passwords are compared as opaque strings.
func (s *Service) Authenticate(ctx context.Context, username, password string, role domain.Role) (domain.Account, error) {
	if !role.Valid() {
		return domain.Account{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	doc, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	switch role {
	case domain.RoleUser:
		for _, u := range doc.Users {
			if u.Username == username && u.Password == password {
				return domain.Account{Username: u.Username, Role: domain.RoleUser, Phone: u.Phone}, nil
			}
		}
	case domain.RoleAdmin:
		for _, a := range doc.Admins {
			if a.Username == username && a.Password == password {
				return domain.Account{Username: a.Username, Role: domain.RoleAdmin}, nil
			}
		}
	}
	return domain.Account{}, domain.ErrAuthentication
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.UserAccount, error) {
	doc, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// UpdateUser overwrites the phone and password of an existing user.
func (s *Service) UpdateUser(ctx context.Context, username, newPhone, newPassword string) error {
	if newPhone == "" || newPassword == "" {
		return fmt.Errorf("%w: phone and password are required", domain.ErrValidation)
	}
	err := s.store.UpdateAccounts(ctx, func(doc *domain.AccountsDoc) error {
		for i := range doc.Users {
			if doc.Users[i].Username == username {
				doc.Users[i].Phone = newPhone
				doc.Users[i].Password = newPassword
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return err
	}
	s.lg.Info("user_updated", "username", username)
	return nil
}

// DeleteUser filters the username out of the users partition. Deleting an
// absent username is a no-op, not an error.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	err := s.store.UpdateAccounts(ctx, func(doc *domain.AccountsDoc) error {
		kept := doc.Users[:0]
		for _, u := range doc.Users {
			if u.Username != username {
				kept = append(kept, u)
			}
		}
		doc.Users = kept
		return nil
	})
	if err != nil {
		return err
	}
	s.lg.Info("user_deleted", "username", username)
	return nil
}
