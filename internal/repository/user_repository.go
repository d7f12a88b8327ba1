package repository

import (
	"quizhub/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	UpdateRole(username, role string) (int64, error)
	DeleteByUsername(username string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole returns the number of matched rows so the caller can distinguish
// a missing user from a no-op update.
func (r *userRepository) UpdateRole(username, role string) (int64, error) {
	res := r.db.Model(&model.User{}).Where("username = ?", username).Update("role", role)
	return res.RowsAffected, res.Error
}

func (r *userRepository) DeleteByUsername(username string) (int64, error) {
	res := r.db.Where("username = ?", username).Delete(&model.User{})
	return res.RowsAffected, res.Error
}
