package service

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
	"quizhub/internal/model"
)

// mapStoreErr converts a repository failure into the taxonomy: a missing
// record becomes NotFound with the given message, anything else is a store
// failure surfaced as StoreUnavailable.
func mapStoreErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "%s", notFoundMsg)
	}
	return apperr.Wrap(apperr.StoreUnavailable, err, "store operation failed")
}

// resultToDTO serializes a result record with its submission time in RFC 3339
// form, the canonical textual timestamp everywhere results leave the API.
func resultToDTO(res *model.Result) dto.ResultResponseDTO {
	out := dto.ResultResponseDTO{
		ID:              res.ID,
		QuizID:          res.QuizID,
		UserID:          res.UserID,
		Score:           res.Score,
		TotalQuestions:  res.TotalQuestions,
		PercentageScore: res.PercentageScore,
		SubmissionTime:  res.SubmittedAt.Format(time.RFC3339),
	}
	copier.Copy(&out.DetailedResults, &res.Details)
	return out
}
