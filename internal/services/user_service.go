package services

import (
	"errors"

	"github.com/Weryck-Lemos/ElectroStock/internal/models"
	"github.com/Weryck-Lemos/ElectroStock/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(name, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	UpdateProfile(userID uint, newEmail, newPassword string) (*models.User, error)
	AdminUpdate(id uint, name, email, role string) (*models.User, error)
	Delete(id uint) error
	EnsureAdmin(name, password string) error
}

type userService struct {
	store      repository.Store
	adminEmail string
}

// NewUserService builds the identity service. adminEmail is the reserved
// administrator address: that account cannot be deleted and no other account
// may register or move to its email.
func NewUserService(store repository.Store, adminEmail string) UserService {
	return &userService{store: store, adminEmail: adminEmail}
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	if email == s.adminEmail {
		return nil, ErrEmailReserved
	}
	if _, err := s.store.Users().GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(models.RoleUser),
	}
	if err := s.store.Users().Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	// Same error for unknown email and bad password so callers cannot tell
	// which one failed.
	user, err := s.store.Users().GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.store.Users().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(email string) (*models.User, error) {
	user, err := s.store.Users().GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll() ([]models.User, error) {
	return s.store.Users().GetAll()
}

func (s *userService) UpdateProfile(userID uint, newEmail, newPassword string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if newEmail != "" && newEmail != user.Email {
		if err := s.checkEmailFree(newEmail, user); err != nil {
			return nil, err
		}
		user.Email = newEmail
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.store.Users().Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AdminUpdate(id uint, name, email, role string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		if err := s.checkEmailFree(email, user); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}
	if role != "" {
		user.Role = role
	}

	if err := s.store.Users().Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if user.Email == s.adminEmail {
		return ErrAdminProtected
	}
	return s.store.Users().Delete(id)
}

// EnsureAdmin creates the reserved administrator account if it is missing.
func (s *userService) EnsureAdmin(name, password string) error {
	_, err := s.store.Users().GetByEmail(s.adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.Users().Create(&models.User{
		Name:         name,
		Email:        s.adminEmail,
		PasswordHash: string(hash),
		Role:         string(models.RoleAdmin),
	})
}

// checkEmailFree rejects the reserved admin email (unless the account being
// changed is the admin itself) and any email already held by another user.
func (s *userService) checkEmailFree(email string, user *models.User) error {
	if email == s.adminEmail && user.Email != s.adminEmail {
		return ErrEmailReserved
	}
	existing, err := s.store.Users().GetByEmail(email)
	if err == nil && existing.ID != user.ID {
		return ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
