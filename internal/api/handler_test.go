package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kinimary/belwest/internal/api"
	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/internal/mocks"
	"github.com/Kinimary/belwest/pkg/token"
)

const testSecret = "0123456789abcdef0123"

type testAPI struct {
	srv    *httptest.Server
	svc    *mocks.MockService
	tokens *token.Manager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	svc := mocks.NewMockService(gomock.NewController(t))
	tokens := token.NewManager(testSecret, "belwest")

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc), api.NewMiddleware(tokens)))
	t.Cleanup(srv.Close)

	return &testAPI{srv: srv, svc: svc, tokens: tokens}
}

func (a *testAPI) do(t *testing.T, method, path string, caller *entity.Caller, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, a.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	if caller != nil {
		raw, err := a.tokens.Issue(*caller, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+raw)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var e api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))

	return e.Message
}

var (
	admin   = &entity.Caller{UserID: 1, Role: entity.RoleAdmin}
	manager = &entity.Caller{UserID: 2, Role: entity.RoleManager}
	store   = &entity.Caller{UserID: 12, Role: entity.RoleStore}
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		resp := a.do(t, http.MethodGet, "/api/permissions/matrix", nil, "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, entity.ErrMsgUnauthorized, decodeMessage(t, resp))
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet,
			a.srv.URL+"/api/permissions/matrix", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := a.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("role not allowed", func(t *testing.T) {
		t.Parallel()

		resp := a.do(t, http.MethodGet, "/api/permissions/matrix", store, "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, entity.ErrMsgForbidden, decodeMessage(t, resp))
	})
}

func TestHandler_Matrix(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	a.svc.EXPECT().Matrix(gomock.Any()).Return(entity.DefaultMatrix())

	resp := a.do(t, http.MethodGet, "/api/permissions/matrix", manager, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))

	m, err := entity.ParseMatrix(raw)
	require.NoError(t, err)
	require.Equal(t, entity.DefaultMatrix(), m)
}

func TestHandler_Check(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().CheckPermission(gomock.Any(), store.UserID, entity.RoleStore, entity.ResourceReports, entity.ActionExport).
		Return(true, nil)

	resp := a.do(t, http.MethodGet, "/api/permissions/check?resource=reports&action=export", store, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, true, got["allowed"])
	require.Equal(t, "reports", got["resource"])

	t.Run("missing params", func(t *testing.T) {
		t.Parallel()

		resp := a.do(t, http.MethodGet, "/api/permissions/check?resource=reports", store, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown action", func(t *testing.T) {
		t.Parallel()

		resp := a.do(t, http.MethodGet, "/api/permissions/check?resource=settings&action=export", store, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_UpsertCustom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		caller *entity.Caller
		body   string
		setup  func(svc *mocks.MockService)
		status int
	}{
		{
			name:   "created",
			caller: admin,
			body:   `{"user_id": 12, "resource": "reports", "action": "export", "granted": true}`,
			setup: func(svc *mocks.MockService) {
				svc.EXPECT().UpsertCustom(gomock.Any(), admin.UserID, int64(12), entity.CustomPermission{
					Resource: entity.ResourceReports, Action: entity.ActionExport, Granted: true,
				}).Return(nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "granted missing",
			caller: admin,
			body:   `{"user_id": 12, "resource": "reports", "action": "export"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid json",
			caller: admin,
			body:   `{"user_id": `,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown resource",
			caller: admin,
			body:   `{"user_id": 12, "resource": "printers", "action": "read", "granted": true}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			caller: admin,
			body:   `{"user_id": 404, "resource": "reports", "action": "read", "granted": false}`,
			setup: func(svc *mocks.MockService) {
				svc.EXPECT().UpsertCustom(gomock.Any(), admin.UserID, int64(404), gomock.Any()).
					Return(entity.ErrUserNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "manager is forbidden",
			caller: manager,
			body:   `{"user_id": 12, "resource": "reports", "action": "export", "granted": true}`,
			status: http.StatusForbidden,
		},
		{
			name:   "operator missing from users",
			caller: admin,
			body:   `{"user_id": 12, "resource": "reports", "action": "export", "granted": true}`,
			setup: func(svc *mocks.MockService) {
				svc.EXPECT().UpsertCustom(gomock.Any(), admin.UserID, int64(12), gomock.Any()).
					Return(fmt.Errorf("%w: operator %d is not a known user", entity.ErrForbidden, admin.UserID))
			},
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t)
			if tt.setup != nil {
				tt.setup(a.svc)
			}

			resp := a.do(t, http.MethodPost, "/api/permissions/custom", tt.caller, tt.body)
			require.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHandler_DeleteCustom(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().DeleteCustom(gomock.Any(), admin.UserID, int64(12), entity.ResourceStores, entity.ActionAssign).Return(nil)
	a.svc.EXPECT().DeleteCustom(gomock.Any(), admin.UserID, int64(13), entity.ResourceStores, entity.ActionAssign).
		Return(entity.ErrNotFound)
	a.svc.EXPECT().DeleteCustom(gomock.Any(), admin.UserID, int64(14), entity.ResourceStores, entity.ActionAssign).
		Return(entity.ErrUserNotFound)

	resp := a.do(t, http.MethodDelete, "/api/permissions/custom/12/stores/assign", admin, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = a.do(t, http.MethodDelete, "/api/permissions/custom/13/stores/assign", admin, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodDelete, "/api/permissions/custom/14/stores/assign", admin, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, entity.ErrMsgUserNotFound, body.Message)

	resp = a.do(t, http.MethodDelete, "/api/permissions/custom/abc/stores/assign", admin, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ResetCustom(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().ResetCustom(gomock.Any(), admin.UserID, int64(12)).Return(int64(4), nil)

	resp := a.do(t, http.MethodDelete, "/api/permissions/custom/reset/12", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.ResetResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, int64(4), got.Deleted)
}

func TestHandler_UserPermissions(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().UserPermissions(gomock.Any(), store.UserID).Return(entity.UserPermissions{
		UserID:            store.UserID,
		Role:              entity.RoleStore,
		Permissions:       map[entity.Resource][]entity.Action{entity.ResourceReports: {entity.ActionRead}},
		CustomPermissions: []entity.CustomPermission{},
	}, nil)

	t.Run("self", func(t *testing.T) {
		resp := a.do(t, http.MethodGet, "/api/permissions/user/12", store, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got entity.UserPermissions
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Equal(t, entity.RoleStore, got.Role)
	})

	t.Run("someone else", func(t *testing.T) {
		resp := a.do(t, http.MethodGet, "/api/permissions/user/13", store, "")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestHandler_Audit(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().Audit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error) {
			require.NotNil(t, f.UserID)
			require.Equal(t, int64(12), *f.UserID)
			require.NotNil(t, f.Granted)
			require.False(t, *f.Granted)
			require.Equal(t, uint64(50), f.Limit)

			return []entity.AuditEntry{{ID: 1, UserID: 12, Resource: entity.ResourceReports, Action: entity.ActionExport}}, nil
		})

	resp := a.do(t, http.MethodGet, "/api/permissions/audit?user_id=12&granted=false&limit=50", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []entity.AuditEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)

	for _, q := range []string{"limit=0", "granted=maybe", "since=yesterday", "action=fly"} {
		resp := a.do(t, http.MethodGet, "/api/permissions/audit?"+q, admin, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.svc.EXPECT().Users(gomock.Any()).Return([]entity.User{{ID: 12, Username: "store_12", Role: entity.RoleStore}}, nil)

	resp := a.do(t, http.MethodGet, "/api/users", manager, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/users", store, "")
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
