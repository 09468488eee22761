package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context) error
	ListUsers(ctx context.Context, limit, offset int) ([]domain.UserWithMovieCount, int, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	Activity(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error)
}

// UserHandler serves profile and user administration endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	AvatarURL *string `json:"avatarUrl"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type userListResponse struct {
	Users  []userResponse `json:"users"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Profile handles GET /api/auth/profile.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDataMessage(w, http.StatusOK, "Profile updated successfully", toUserResponse(u))
}

// DeleteAccount handles DELETE /api/auth/account.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDataMessage(w, http.StatusOK, "Account deleted successfully", nil)
}

// ListUsers handles GET /api/auth/users?limit=50&offset=0.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	if limit <= 0 {
		limit = user.DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := h.svc.ListUsers(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := userListResponse{
		Users:  make([]userResponse, 0, len(users)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range users {
		ur := toUserResponse(&users[i].User)
		count := users[i].MovieCount
		ur.MovieCount = &count
		resp.Users = append(resp.Users, ur)
	}
	writeData(w, http.StatusOK, resp)
}

// SetRole handles PUT /api/auth/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDataMessage(w, http.StatusOK, "Role updated successfully", toUserResponse(u))
}

type activityEntryResponse struct {
	historyEntryResponse
	EntityType string  `json:"entityType"`
	EntityID   *string `json:"entityId,omitempty"`
}

// Activity handles GET /api/auth/activity?limit=50&offset=0.
func (h *UserHandler) Activity(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	records, err := h.svc.Activity(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityEntryResponse, 0, len(records))
	for _, rec := range records {
		entry := activityEntryResponse{
			historyEntryResponse: toHistoryEntry(rec),
			EntityType:           rec.EntityType.String(),
		}
		if rec.EntityID != nil {
			id := rec.EntityID.String()
			entry.EntityID = &id
		}
		out = append(out, entry)
	}
	writeData(w, http.StatusOK, out)
}

// queryInt parses an optional integer query parameter; missing means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return n, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
