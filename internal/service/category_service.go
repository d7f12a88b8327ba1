package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
	"quizhub/internal/repository"
)

type CategoryService interface {
	List() ([]dto.CategoryDTO, error)
	Add(req dto.CategoryCreateDTO) error
	Update(name, description string) error
	Remove(name string) error
	Seed() error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() ([]dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to list categories")
	}
	dtos := make([]dto.CategoryDTO, 0, len(categories))
	copier.Copy(&dtos, &categories)
	return dtos, nil
}

func (s *categoryService) Add(req dto.CategoryCreateDTO) error {
	if _, err := s.categoryRepo.FindByName(req.Name); err == nil {
		return apperr.New(apperr.Conflict, "Category with this name already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}

	category := model.Category{Name: req.Name, Description: req.Description}
	if err := s.categoryRepo.Create(&category); err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "failed to add category")
	}
	return nil
}

func (s *categoryService) Update(name, description string) error {
	rows, err := s.categoryRepo.UpdateDescription(name, description)
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Category not found.")
	}
	return nil
}

func (s *categoryService) Remove(name string) error {
	rows, err := s.categoryRepo.DeleteByName(name)
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Category not found.")
	}
	return nil
}

// Seed inserts a starter set of categories when the catalog is empty, so a
// fresh deployment has something to file quizzes under.
func (s *categoryService) Seed() error {
	n, err := s.categoryRepo.Count()
	if err != nil {
		return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
	}
	if n > 0 {
		return nil
	}

	defaults := []model.Category{
		{Name: "Science", Description: "Questions about various scientific fields."},
		{Name: "History", Description: "Events and figures from the past."},
		{Name: "Mathematics", Description: "Problems and concepts in mathematics."},
		{Name: "Literature", Description: "Works and authors of literature."},
	}
	for i := range defaults {
		if err := s.categoryRepo.Create(&defaults[i]); err != nil {
			return apperr.Wrap(apperr.StoreUnavailable, err, "failed to seed categories")
		}
	}
	log.Info().Int("count", len(defaults)).Msg("Seeded default categories")
	return nil
}
