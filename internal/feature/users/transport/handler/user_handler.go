// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// UserUsecase defines the lifecycle operations the handlers need.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type UserUsecase interface {
	// Create registers a new user; the stored user carries the assigned ID.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateFullName overwrites the non-empty name fields of an existing user.
	UpdateFullName(ctx context.Context, id uint, firstName, lastName string) (*entity.User, error)
	// Update replaces every field of an existing user except the identifier.
	Update(ctx context.Context, id uint, user *entity.User) (*entity.User, error)
	// Delete removes an existing user.
	Delete(ctx context.Context, id uint) error
	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// FindAll returns every stored user.
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByBirthDateRange returns users born within [fromDate, toDate].
	FindByBirthDateRange(ctx context.Context, fromDate, toDate string) ([]entity.User, error)
}

// UserHandler handles the HTTP requests for user CRUD and search.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
// - binds and structurally validates the JSON body (400 on failure)
// - rejects an under-age or missing birthdate with 400
// - returns 201 with the stored user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	created, err := h.users.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user created", "user_id", created.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResponse(created))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateFullName handles PATCH /users/:id.
// Empty or absent name fields leave the stored values untouched.
func (h *UserHandler) UpdateFullName(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req dto.UserFullNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update full name validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	updated, err := h.users.UpdateFullName(c.Request.Context(), id, req.FirstName, req.LastName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user full name updated", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Update handles PUT /users/:id with a full replacement payload.
// The identifier in the path always wins over anything in the body.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req dto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	updated, err := h.users.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user updated", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResponse(updated))
}

// Delete handles DELETE /users/:id, returning 204 with an empty body.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// Search handles GET /users/search?from=YYYY-MM-DD&to=YYYY-MM-DD.
// A malformed bound surfaces as a generic internal error.
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.users.FindByBirthDateRange(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// userID parses the :id path parameter, responding 400 on malformed input.
func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		slog.Warn("invalid user id", "error", err, "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// respondError translates typed failures into status codes. Anything
// unexpected is logged in full and returned as an opaque 500.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		slog.Warn("user not found", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
	case errors.Is(err, usecase.ErrInvalidUserAge):
		slog.Warn("invalid user age", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "something went wrong"})
	}
}
