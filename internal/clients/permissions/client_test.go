package permissions_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kinimary/belwest/internal/clients/permissions"
	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/pkg/config"
)

func newClient(t *testing.T, h http.HandlerFunc) *permissions.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return permissions.NewClient(config.ClientConfig{
		BaseURL:       srv.URL + "/",
		Token:         "test-token",
		Timeout:       time.Second,
		RetryAttempts: 1,
	})
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" ||
			r.Header.Get("X-Service-Name") != "permctl" ||
			r.Header.Get("X-Request-Id") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		require.Equal(t, "/api/users", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 12, "username": "store_12", "email": "s@belwest.by", "role": "store"}]`))
	})

	users, err := c.Users(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entity.User{{ID: 12, Username: "store_12", Email: "s@belwest.by", Role: entity.RoleStore}}, users)
}

func TestClient_UserPermissions(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/permissions/user/12", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"user_id": 12,
			"role": "store",
			"permissions": {"reports": ["read", "export"]},
			"custom_permissions": [{"resource": "reports", "action": "export", "granted": true}]
		}`))
	})

	got, err := c.UserPermissions(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, entity.RoleStore, got.Role)
	require.Equal(t, []entity.CustomPermission{
		{Resource: entity.ResourceReports, Action: entity.ActionExport, Granted: true},
	}, got.CustomPermissions)
}

func TestClient_UpsertCustom(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]any{
			"user_id": float64(12), "resource": "system", "action": "logs", "granted": false,
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	})

	err := c.UpsertCustom(context.Background(), 12, entity.CustomPermission{
		Resource: entity.ResourceSystem, Action: entity.ActionLogs, Granted: false,
	})
	require.NoError(t, err)
}

func TestClient_DeleteAndReset(t *testing.T) {
	t.Parallel()

	var paths []string

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	require.NoError(t, c.DeleteCustom(ctx, 12, entity.ResourceUsers, entity.ActionManageHierarchy))
	require.NoError(t, c.ResetCustom(ctx, 12))
	require.Equal(t, []string{
		"/api/permissions/custom/12/users/manage_hierarchy",
		"/api/permissions/custom/reset/12",
	}, paths)
}

func TestClient_Audit(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "12", q.Get("user_id"))
		require.Equal(t, "true", q.Get("granted"))
		require.Equal(t, "2025-03-01T00:00:00Z", q.Get("since"))
		require.Empty(t, q.Get("limit"))

		_, _ = w.Write([]byte(`[{"id": 3, "user_id": 12, "resource": "reports", "action": "export", "granted": true}]`))
	})

	userID := int64(12)
	granted := true
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	entries, err := c.Audit(context.Background(), entity.AuditFilter{UserID: &userID, Granted: &granted, Since: &since})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(3), entries[0].ID)
}

func TestClient_Check(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "reports", r.URL.Query().Get("resource"))
		_, _ = w.Write([]byte(`{"resource": "reports", "action": "export", "allowed": true}`))
	})

	ok, err := c.Check(context.Background(), entity.ResourceReports, entity.ActionExport)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, entity.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, entity.ErrForbidden},
		{"not found", http.StatusNotFound, entity.ErrNotFound},
		{"server error", http.StatusInternalServerError, nil},
		{"bad request", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message": "Ошибка"}`))
			})

			_, err := c.Matrix(context.Background())
			require.Error(t, err)

			if tt.sentinel != nil {
				require.ErrorIs(t, err, tt.sentinel)
			}

			var apiErr *permissions.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, "Ошибка", apiErr.Message)

			require.Equal(t, int32(1), calls.Load(), "http answers are not retried")
		})
	}
}

func TestClient_DeleteCustom_UnknownUser(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)

		if r.URL.Path == "/api/permissions/custom/404/stores/assign" {
			_, _ = w.Write([]byte(`{"message": "Пользователь не найден"}`))
			return
		}

		_, _ = w.Write([]byte(`{"message": "Кастомное право не найдено"}`))
	})

	ctx := context.Background()

	err := c.DeleteCustom(ctx, 404, entity.ResourceStores, entity.ActionAssign)
	require.ErrorIs(t, err, entity.ErrUserNotFound)
	require.NotErrorIs(t, err, entity.ErrNotFound)

	err = c.DeleteCustom(ctx, 12, entity.ResourceStores, entity.ActionAssign)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.NotErrorIs(t, err, entity.ErrUserNotFound)
}

func TestClient_TransportErrorIsRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)

			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()

			return
		}

		_, _ = io.WriteString(w, `{"admin": {"reports": ["read"]}}`)
	})

	m, err := c.Matrix(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"read"}, m["admin"]["reports"])
	require.Equal(t, int32(2), calls.Load())
}
