package entity

import (
	"context"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Caller is the authenticated operator of a request.
type Caller struct {
	UserID int64
	Role   Role
}

// CanView reports whether the caller may read the permissions of userID.
func (c Caller) CanView(userID int64) bool {
	return c.Role.CanManage() || c.UserID == userID
}

type CallerClaims struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// AuditOperation tells how an audit row changed the override of its pair.
type AuditOperation string

const (
	AuditOperationSet   AuditOperation = "set"
	AuditOperationClear AuditOperation = "clear"
	AuditOperationReset AuditOperation = "reset"
)

// AuditEntry is one append-only row of the change log. For clear and reset rows
// Granted holds the value of the removed override.
type AuditEntry struct {
	ID            int64          `json:"id"`
	Operation     AuditOperation `json:"operation"`
	UserID        int64          `json:"user_id"`
	Username      string         `json:"username"`
	Role          Role           `json:"role"`
	Resource      Resource       `json:"resource"`
	Action        Action         `json:"action"`
	Granted       bool           `json:"granted"`
	GrantedBy     *int64         `json:"granted_by"`
	GrantedByName string         `json:"granted_by_name"`
	GrantedAt     time.Time      `json:"granted_at"`
}

type AuditFilter struct {
	UserID   *int64
	Resource *Resource
	Action   *Action
	Granted  *bool
	Since    *time.Time
	Limit    uint64
}

const DefaultAuditLimit = 200

func SetCallerToContext(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, CtxKeyCaller{}, c)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(CtxKeyCaller{}).(Caller)
	return c, ok
}
