package repository

import (
	"quizhub/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindAll(category string) ([]model.Quiz, error)
	Delete(id uint) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAll lists quizzes, optionally narrowed to an exact category match.
func (r *quizRepository) FindAll(category string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	query := r.db.Order("created_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.Quiz{}, id)
	return res.RowsAffected, res.Error
}
