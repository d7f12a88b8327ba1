package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// In-memory repository fakes backing the service tests. Not-found conditions
// surface as gorm.ErrRecordNotFound, the same sentinel the real gorm
// repositories return.

var errStoreDown = errors.New("store unreachable")

type fakeUserRepo struct {
	users   []*model.User
	nextID  uint
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (f *fakeUserRepo) Create(user *model.User) error {
	if f.failAll {
		return errStoreDown
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(username, role string) (int64, error) {
	if f.failAll {
		return 0, errStoreDown
	}
	for _, u := range f.users {
		if u.Username == username {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) DeleteByUsername(username string) (int64, error) {
	if f.failAll {
		return 0, errStoreDown
	}
	for i, u := range f.users {
		if u.Username == username {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeSessionRepo struct {
	sessions []*model.Session
	nextID   uint
}

func newFakeSessionRepo() *fakeSessionRepo { return &fakeSessionRepo{nextID: 1} }

func (f *fakeSessionRepo) Create(session *model.Session) error {
	session.ID = f.nextID
	f.nextID++
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) CloseLatestOpen(username string, at time.Time) (int64, error) {
	var latest *model.Session
	for _, s := range f.sessions {
		if s.Username != username || s.LogoutTime != nil {
			continue
		}
		if latest == nil || s.LoginTime.After(latest.LoginTime) {
			latest = s
		}
	}
	if latest == nil {
		return 0, nil
	}
	t := at
	latest.LogoutTime = &t
	return 1, nil
}

func (f *fakeSessionRepo) DeleteByUsername(username string) (int64, error) {
	kept := f.sessions[:0]
	var deleted int64
	for _, s := range f.sessions {
		if s.Username == username {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	f.sessions = kept
	return deleted, nil
}

func (f *fakeSessionRepo) openCount(username string) int {
	n := 0
	for _, s := range f.sessions {
		if s.Username == username && s.LogoutTime == nil {
			n++
		}
	}
	return n
}

type fakeCategoryRepo struct {
	categories []*model.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo { return &fakeCategoryRepo{nextID: 1} }

func (f *fakeCategoryRepo) Create(category *model.Category) error {
	category.ID = f.nextID
	f.nextID++
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByName(name string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Count() (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) UpdateDescription(name, description string) (int64, error) {
	for _, c := range f.categories {
		if c.Name == name {
			c.Description = description
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCategoryRepo) DeleteByName(name string) (int64, error) {
	for i, c := range f.categories {
		if c.Name == name {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeQuizRepo struct {
	quizzes []*model.Quiz
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo { return &fakeQuizRepo{nextID: 1} }

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = f.nextID
	f.nextID++
	f.quizzes = append(f.quizzes, quiz)
	return nil
}

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuizRepo) FindAll(category string) ([]model.Quiz, error) {
	out := make([]model.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		if category != "" && q.Category != category {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuizRepo) Delete(id uint) (int64, error) {
	for i, q := range f.quizzes {
		if q.ID == id {
			f.quizzes = append(f.quizzes[:i], f.quizzes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeResultRepo struct {
	results    []*model.Result
	nextID     uint
	failCreate bool
}

func newFakeResultRepo() *fakeResultRepo { return &fakeResultRepo{nextID: 1} }

func (f *fakeResultRepo) Create(result *model.Result) error {
	if f.failCreate {
		return errStoreDown
	}
	result.ID = f.nextID
	f.nextID++
	f.results = append(f.results, result)
	return nil
}

func (f *fakeResultRepo) FindByID(id uint) (*model.Result, error) {
	for _, r := range f.results {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultRepo) FindAllByUser(username string) ([]model.Result, error) {
	out := make([]model.Result, 0)
	for i := len(f.results) - 1; i >= 0; i-- {
		if f.results[i].UserID == username {
			out = append(out, *f.results[i])
		}
	}
	return out, nil
}

func (f *fakeResultRepo) BestScoresByUser() ([]repository.UserBestScore, error) {
	order := make([]string, 0)
	best := make(map[string]float64)
	for _, r := range f.results {
		if _, seen := best[r.UserID]; !seen {
			order = append(order, r.UserID)
			best[r.UserID] = r.PercentageScore
		} else if r.PercentageScore > best[r.UserID] {
			best[r.UserID] = r.PercentageScore
		}
	}
	rows := make([]repository.UserBestScore, 0, len(order))
	for _, u := range order {
		rows = append(rows, repository.UserBestScore{UserID: u, HighestScore: best[u]})
	}
	return rows, nil
}

func (f *fakeResultRepo) DeleteByQuizID(quizID uint) (int64, error) {
	kept := f.results[:0]
	var deleted int64
	for _, r := range f.results {
		if r.QuizID == quizID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.results = kept
	return deleted, nil
}

func (f *fakeResultRepo) DeleteByUser(username string) (int64, error) {
	kept := f.results[:0]
	var deleted int64
	for _, r := range f.results {
		if r.UserID == username {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.results = kept
	return deleted, nil
}
