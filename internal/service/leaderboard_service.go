package service

import (
	"math"
	"sort"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/repository"
)

// DefaultLeaderboardSize caps the ranking at the top ten users.
const DefaultLeaderboardSize = 10

// LeaderboardService ranks users by their single best percentage score.
type LeaderboardService interface {
	Top(limit int) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	resultRepo repository.ResultRepository
}

func NewLeaderboardService(resultRepo repository.ResultRepository) LeaderboardService {
	return &leaderboardService{resultRepo: resultRepo}
}

// Top returns at most limit entries, sorted non-increasing by highest score
// and rounded to two decimal places. Ties keep the store's grouping order.
func (s *leaderboardService) Top(limit int) ([]dto.LeaderboardEntryDTO, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	rows, err := s.resultRepo.BestScoresByUser()
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, err, "failed to aggregate leaderboard")
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].HighestScore > rows[j].HighestScore
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.LeaderboardEntryDTO{
			Username:     row.UserID,
			HighestScore: math.Round(row.HighestScore*100) / 100,
		})
	}
	return entries, nil
}
