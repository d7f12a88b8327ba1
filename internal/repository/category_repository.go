package repository

import (
	"quizhub/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByName(name string) (*model.Category, error)
	FindAll() ([]model.Category, error)
	Count() (int64, error)
	UpdateDescription(name, description string) (int64, error)
	DeleteByName(name string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Category{}).Count(&n).Error
	return n, err
}

func (r *categoryRepository) UpdateDescription(name, description string) (int64, error) {
	res := r.db.Model(&model.Category{}).Where("name = ?", name).Update("description", description)
	return res.RowsAffected, res.Error
}

func (r *categoryRepository) DeleteByName(name string) (int64, error) {
	res := r.db.Where("name = ?", name).Delete(&model.Category{})
	return res.RowsAffected, res.Error
}
