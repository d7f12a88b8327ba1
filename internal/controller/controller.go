package controller

import (
	"github.com/gin-gonic/gin"

	"quizhub/internal/apperr"
	"quizhub/internal/dto"
)

// RespondError writes a service failure as JSON, with the HTTP status derived
// from the error's taxonomy kind.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
}
