package controller

import (
	"errors"
	"strconv"

	"github.com/rawan03ayman/Employee-Training-System/internal/model"
	"github.com/rawan03ayman/Employee-Training-System/internal/service"
	"github.com/rawan03ayman/Employee-Training-System/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateUserRequest is a partial update; absent fields are left untouched.
// Role and isActive are honored only for admin callers.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	Role       *string `json:"role" binding:"omitempty,oneof=Admin Employee"`
	IsActive   *bool   `json:"isActive"`
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response
// @Router /api/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetUsers()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetUser godoc
// @Summary Get a single user
// @Description Owner-or-admin: a user may read their own profile, an admin any profile.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !util.IsOwnerOrAdmin(claims, id) {
		util.Forbidden(ctx)
		return
	}

	user, err := c.UserService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// GetCurrentUser godoc
// @Summary Get the authenticated caller's profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateUser godoc
// @Summary Update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body UpdateUserRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "invalid fields or email already exists"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if !util.IsOwnerOrAdmin(claims, id) {
		util.Forbidden(ctx)
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := service.UserUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		IsActive:   req.IsActive,
	}
	if req.Role != nil {
		role := model.UserRole(*req.Role)
		update.Role = &role
	}

	user, err := c.UserService.UpdateUser(id, update, util.IsAdmin(claims))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrEmailTaken):
			util.BadRequest(ctx, err.Error())
		default:
			util.InternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user permanently
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 204 "deleted"
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.DeleteUser(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.InternalError(ctx, err)
		}
		return
	}
	util.NoContent(ctx)
}
