package repository

import (
	"time"

	"quizhub/internal/model"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	CloseLatestOpen(username string, at time.Time) (int64, error)
	DeleteByUsername(username string) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

// CloseLatestOpen stamps the logout time on the single most recently opened
// session for the user that is still open. Older open sessions are left as
// they are; at most one row is ever touched.
func (r *sessionRepository) CloseLatestOpen(username string, at time.Time) (int64, error) {
	res := r.db.Exec(`
		UPDATE user_sessions SET logout_time = ?
		WHERE id = (
			SELECT id FROM user_sessions
			WHERE username = ? AND logout_time IS NULL
			ORDER BY login_time DESC
			LIMIT 1
		)`, at, username)
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) DeleteByUsername(username string) (int64, error) {
	res := r.db.Where("username = ?", username).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
