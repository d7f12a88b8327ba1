package repository

import (
	"quizhub/internal/model"

	"gorm.io/gorm"
)

// UserBestScore is one aggregation row: a user and their single best
// percentage score across all submissions.
type UserBestScore struct {
	UserID       string
	HighestScore float64
}

type ResultRepository interface {
	Create(result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindAllByUser(username string) ([]model.Result, error)
	BestScoresByUser() ([]UserBestScore, error)
	DeleteByQuizID(quizID uint) (int64, error)
	DeleteByUser(username string) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAllByUser(username string) ([]model.Result, error) {
	var results []model.Result
	if err := r.db.Where("user_id = ?", username).Order("submitted_at desc").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// BestScoresByUser groups all results by user and keeps each user's maximum
// percentage score. Ranking order and truncation are applied by the service.
func (r *resultRepository) BestScoresByUser() ([]UserBestScore, error) {
	var rows []UserBestScore
	err := r.db.Model(&model.Result{}).
		Select("user_id, MAX(percentage_score) as highest_score").
		Group("user_id").
		Scan(&rows).Error
	return rows, err
}

func (r *resultRepository) DeleteByQuizID(quizID uint) (int64, error) {
	res := r.db.Where("quiz_id = ?", quizID).Delete(&model.Result{})
	return res.RowsAffected, res.Error
}

func (r *resultRepository) DeleteByUser(username string) (int64, error) {
	res := r.db.Where("user_id = ?", username).Delete(&model.Result{})
	return res.RowsAffected, res.Error
}
