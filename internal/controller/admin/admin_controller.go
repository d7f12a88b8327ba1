package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizhub/internal/controller"
	"quizhub/internal/dto"
	"quizhub/internal/service"
)

// AdminController exposes the role-gated moderation surface. Every route it
// serves sits behind the admin middleware.
type AdminController struct {
	adminService    service.AdminService
	categoryService service.CategoryService
}

func NewAdminController(adminService service.AdminService, categoryService service.CategoryService) *AdminController {
	return &AdminController{adminService: adminService, categoryService: categoryService}
}

// ListUsers godoc
// @Summary (Admin) List all users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdminUserDTO
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// SetRole godoc
// @Summary (Admin) Change a user's role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param role_data body dto.SetRoleRequest true "New role: user or admin"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Role outside user/admin"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{username}/role [put]
func (c *AdminController) SetRole(ctx *gin.Context) {
	var req dto.SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	username := ctx.Param("username")
	if err := c.adminService.SetRole(username, req.Role); err != nil {
		log.Warn().Err(err).Str("username", username).Str("role", req.Role).Msg("Admin SetRole failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User role updated successfully!"})
}

// DeleteUser godoc
// @Summary (Admin) Delete a user and their data
// @Description Removes the user, then their results and sessions (best-effort cascade).
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{username} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	username := ctx.Param("username")
	if err := c.adminService.DeleteUser(username); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Str("username", username).Msg("Admin deleted user")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully!"})
}

// ListQuizzes godoc
// @Summary (Admin) List all quizzes with full details
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponseDTO
// @Router /admin/quizzes [get]
func (c *AdminController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.adminService.ListQuizzes()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its results
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminController) DeleteQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	if err := c.adminService.DeleteQuiz(uint(quizID)); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Uint64("quizID", quizID).Msg("Admin deleted quiz")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz deleted successfully!"})
}

// AddCategory godoc
// @Summary (Admin) Add a category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category_data body dto.CategoryCreateDTO true "Name and description"
// @Success 201 {object} dto.MessageResponse
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Router /admin/categories [post]
func (c *AdminController) AddCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.categoryService.Add(req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Category added successfully!"})
}

// UpdateCategory godoc
// @Summary (Admin) Update a category description
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Category name"
// @Param category_data body dto.CategoryUpdateDTO true "New description"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/categories/{name} [put]
func (c *AdminController) UpdateCategory(ctx *gin.Context) {
	var req dto.CategoryUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.categoryService.Update(ctx.Param("name"), req.Description); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Category updated successfully!"})
}

// DeleteCategory godoc
// @Summary (Admin) Delete a category
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param name path string true "Category name"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/categories/{name} [delete]
func (c *AdminController) DeleteCategory(ctx *gin.Context) {
	if err := c.categoryService.Remove(ctx.Param("name")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully!"})
}
