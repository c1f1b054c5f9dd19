package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

var (
	ErrUserNotFound  = errors.New("user_not_found")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

type UserUpdateInput struct {
	ID     uint    `json:"id"`
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Update applies the provided fields only; role and status values are
// validated against the enums.
func (s *UserService) Update(in UserUpdateInput) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		role := strings.ToUpper(strings.TrimSpace(*in.Role))
		if role != models.RoleAdmin && role != models.RoleClient {
			return nil, ErrInvalidRole
		}
		updates["role"] = role
	}
	if in.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*in.Status))
		if status != models.UserStatusActive && status != models.UserStatusDeleted {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if err := s.DB.First(&user, in.ID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete soft-deletes by default (status = DELETED, record kept). With
// permanent=true the user and their reservations and favorites are removed
// in one transaction; reviews survive anonymized.
func (s *UserService) Delete(id uint, permanent bool) error {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if !permanent {
		return s.DB.Model(&user).Update("status", models.UserStatusDeleted).Error
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations for user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites for user %d: %w", id, err)
		}
		if err := tx.Model(&models.Review{}).Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach reviews for user %d: %w", id, err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, err)
		}
		return nil
	})
}
