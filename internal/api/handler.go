package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Kinimary/belwest/internal/entity"
)

// @title BELWEST Permissions API
// @version 1.0
// @description Role defaults, per-user permission overrides and their audit trail
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Matrix(ctx context.Context) entity.Matrix
	Users(ctx context.Context) ([]entity.User, error)
	UserPermissions(ctx context.Context, userID int64) (entity.UserPermissions, error)
	CheckPermission(ctx context.Context, userID int64, role entity.Role, r entity.Resource, a entity.Action) (bool, error)
	CustomPermissions(ctx context.Context) ([]entity.CustomPermissionRecord, error)
	UpsertCustom(ctx context.Context, grantedBy, userID int64, p entity.CustomPermission) error
	DeleteCustom(ctx context.Context, changedBy, userID int64, r entity.Resource, a entity.Action) error
	ResetCustom(ctx context.Context, changedBy, userID int64) (int64, error)
	Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error)
}

const maxAuditLimit = 1000

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Matrix godoc
// @Summary Role permission matrix
// @Description Default grants of every role
// @Tags permissions
// @Produce json
// @Success 200 {object} map[string]map[string][]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /permissions/matrix [get]
// @Security BearerAuth
func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sendJSON(ctx, w, http.StatusOK, h.s.Matrix(ctx))
}

type CheckResponse struct {
	Resource entity.Resource `json:"resource"`
	Action   entity.Action   `json:"action"`
	Allowed  bool            `json:"allowed"`
}

// Check godoc
// @Summary Check a permission of the caller
// @Tags permissions
// @Produce json
// @Param resource query string true "Resource"
// @Param action query string true "Action"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /permissions/check [get]
// @Security BearerAuth
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := entity.CallerFromContext(ctx)
	if !ok {
		sendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, entity.ErrMsgUnauthorized)
		return
	}

	q := r.URL.Query()
	if q.Get("resource") == "" || q.Get("action") == "" {
		sendErr(ctx, w, http.StatusBadRequest, errors.New("resource and action are required"),
			"Необходимо указать resource и action")
		return
	}

	res, act, err := entity.ParsePair(q.Get("resource"), q.Get("action"))
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	allowed, err := h.s.CheckPermission(ctx, caller.UserID, caller.Role, res, act)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, CheckResponse{Resource: res, Action: act, Allowed: allowed})
}

// CustomPermissions godoc
// @Summary All permission overrides
// @Tags permissions
// @Produce json
// @Success 200 {array} entity.CustomPermissionRecord
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /permissions/custom [get]
// @Security BearerAuth
func (h *Handler) CustomPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.s.CustomPermissions(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, records)
}

type UpsertCustomRequest struct {
	UserID   int64  `json:"user_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Granted  *bool  `json:"granted"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UpsertCustom godoc
// @Summary Create or replace a permission override
// @Tags permissions
// @Accept json
// @Produce json
// @Param UpsertCustomRequest body UpsertCustomRequest true "Override"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /permissions/custom [post]
// @Security BearerAuth
func (h *Handler) UpsertCustom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, _ := entity.CallerFromContext(ctx)

	var req UpsertCustomRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Невалидный JSON")
		return
	}

	if req.UserID <= 0 || req.Resource == "" || req.Action == "" || req.Granted == nil {
		sendErr(ctx, w, http.StatusBadRequest, errors.New("missing required fields"),
			"Обязательные поля: user_id, resource, action, granted")
		return
	}

	res, act, err := entity.ParsePair(req.Resource, req.Action)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	err = h.s.UpsertCustom(ctx, caller.UserID, req.UserID, entity.CustomPermission{
		Resource: res,
		Action:   act,
		Granted:  *req.Granted,
	})
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusCreated, MessageResponse{Message: "Кастомное право сохранено"})
}

// DeleteCustom godoc
// @Summary Delete one permission override
// @Tags permissions
// @Param user_id path int true "User ID"
// @Param resource path string true "Resource"
// @Param action path string true "Action"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /permissions/custom/{user_id}/{resource}/{action} [delete]
// @Security BearerAuth
func (h *Handler) DeleteCustom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, _ := entity.CallerFromContext(ctx)

	userID, err := pathUserID(r)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Некорректный user_id")
		return
	}

	res, act, err := entity.ParsePair(chi.URLParam(r, "resource"), chi.URLParam(r, "action"))
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	err = h.s.DeleteCustom(ctx, caller.UserID, userID, res, act)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ResetResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// ResetCustom godoc
// @Summary Delete all permission overrides of a user
// @Tags permissions
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} ResetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /permissions/custom/reset/{user_id} [delete]
// @Security BearerAuth
func (h *Handler) ResetCustom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, _ := entity.CallerFromContext(ctx)

	userID, err := pathUserID(r)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Некорректный user_id")
		return
	}

	n, err := h.s.ResetCustom(ctx, caller.UserID, userID)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, ResetResponse{Message: "Права сброшены к значениям роли", Deleted: n})
}

// UserPermissions godoc
// @Summary Effective permissions of a user
// @Tags permissions
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} entity.UserPermissions
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /permissions/user/{user_id} [get]
// @Security BearerAuth
func (h *Handler) UserPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, _ := entity.CallerFromContext(ctx)

	userID, err := pathUserID(r)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Некорректный user_id")
		return
	}

	if !caller.CanView(userID) {
		sendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, entity.ErrMsgForbidden)
		return
	}

	perms, err := h.s.UserPermissions(ctx, userID)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, perms)
}

// Audit godoc
// @Summary Permission change history
// @Tags permissions
// @Produce json
// @Param user_id query int false "User ID"
// @Param resource query string false "Resource"
// @Param action query string false "Action"
// @Param granted query bool false "Granted"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Max entries"
// @Success 200 {array} entity.AuditEntry
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /permissions/audit [get]
// @Security BearerAuth
func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := parseAuditFilter(r)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	entries, err := h.s.Audit(ctx, f)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, entries)
}

// Users godoc
// @Summary User directory
// @Tags users
// @Produce json
// @Success 200 {array} entity.User
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
// @Security BearerAuth
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, users)
}

var errBadQuery = errors.New("bad query parameter")

func parseAuditFilter(r *http.Request) (entity.AuditFilter, error) {
	q := r.URL.Query()

	var f entity.AuditFilter

	if v := q.Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("%w: user_id: %w", errBadQuery, err)
		}

		f.UserID = &id
	}

	if v := q.Get("resource"); v != "" {
		res, err := entity.ParseResource(v)
		if err != nil {
			return f, err
		}

		f.Resource = &res
	}

	if v := q.Get("action"); v != "" {
		act, err := entity.ParseAction(v)
		if err != nil {
			return f, err
		}

		f.Action = &act
	}

	if v := q.Get("granted"); v != "" {
		granted, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("%w: granted: %w", errBadQuery, err)
		}

		f.Granted = &granted
	}

	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, fmt.Errorf("%w: since: %w", errBadQuery, err)
		}

		f.Since = &since
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 || limit > maxAuditLimit {
			return f, fmt.Errorf("%w: limit must be in 1..%d", errBadQuery, maxAuditLimit)
		}

		f.Limit = limit
	}

	return f, nil
}

func pathUserID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		return 0, err
	}

	if id <= 0 {
		return 0, fmt.Errorf("user_id must be positive, got %d", id)
	}

	return id, nil
}

func (h *Handler) sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUserNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgUserNotFound)
	case errors.Is(err, entity.ErrNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, "Кастомное право не найдено")
	case errors.Is(err, entity.ErrInvalidResource):
		sendErr(ctx, w, http.StatusBadRequest, err, "Неизвестный ресурс")
	case errors.Is(err, entity.ErrInvalidAction):
		sendErr(ctx, w, http.StatusBadRequest, err, "Недопустимое действие для ресурса")
	case errors.Is(err, errBadQuery):
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
	case errors.Is(err, entity.ErrForbidden):
		sendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgForbidden)
	default:
		sendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}
