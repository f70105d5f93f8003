package entity

import (
	"slices"
	"time"
)

// CustomPermission is an explicit per-user override of the role default for one pair.
type CustomPermission struct {
	Resource Resource `json:"resource"`
	Action   Action   `json:"action"`
	Granted  bool     `json:"granted"`
}

// CustomPermissions holds at most one override per (resource, action) pair.
// The zero value is an empty set.
type CustomPermissions struct {
	entries []CustomPermission
}

func NewCustomPermissions(entries ...CustomPermission) CustomPermissions {
	var cp CustomPermissions
	for _, e := range entries {
		cp.Upsert(e)
	}

	return cp
}

// Upsert replaces any existing override for the same pair.
func (c *CustomPermissions) Upsert(e CustomPermission) {
	c.Remove(e.Resource, e.Action)
	c.entries = append(c.entries, e)
}

func (c *CustomPermissions) Remove(r Resource, a Action) bool {
	before := len(c.entries)
	c.entries = slices.DeleteFunc(c.entries, func(e CustomPermission) bool {
		return e.Resource == r && e.Action == a
	})

	return len(c.entries) != before
}

func (c CustomPermissions) Find(r Resource, a Action) (CustomPermission, bool) {
	for _, e := range c.entries {
		if e.Resource == r && e.Action == a {
			return e, true
		}
	}

	return CustomPermission{}, false
}

func (c CustomPermissions) Len() int {
	return len(c.entries)
}

// Entries returns a copy in insertion order.
func (c CustomPermissions) Entries() []CustomPermission {
	return slices.Clone(c.entries)
}

func (c CustomPermissions) Equal(other CustomPermissions) bool {
	if c.Len() != other.Len() {
		return false
	}

	for _, e := range c.entries {
		o, ok := other.Find(e.Resource, e.Action)
		if !ok || o.Granted != e.Granted {
			return false
		}
	}

	return true
}

// UserPermissionState is the editable snapshot of one user's overrides.
type UserPermissionState struct {
	UserID int64
	Role   Role
	Custom CustomPermissions
}

// Effective resolves a pair: an override wins, otherwise the role default applies.
func Effective(m Matrix, role Role, custom CustomPermissions, r Resource, a Action) bool {
	if o, ok := custom.Find(r, a); ok {
		return o.Granted
	}

	return m.Allows(role, r, a)
}

// EffectiveSet expands the effective grants of a role with overrides applied.
func EffectiveSet(m Matrix, role Role, custom CustomPermissions) map[Resource][]Action {
	out := make(map[Resource][]Action, len(Resources()))

	for _, r := range Resources() {
		actions := []Action{}

		for _, a := range ActionsFor(r) {
			if Effective(m, role, custom, r, a) {
				actions = append(actions, a)
			}
		}

		out[r] = actions
	}

	return out
}

type CellTag string

const (
	CellTagNone    CellTag = ""
	CellTagBase    CellTag = "base"
	CellTagGranted CellTag = "granted-override"
	CellTagDenied  CellTag = "denied-override"
)

func Tag(m Matrix, role Role, custom CustomPermissions, r Resource, a Action) CellTag {
	if o, ok := custom.Find(r, a); ok {
		if o.Granted {
			return CellTagGranted
		}

		return CellTagDenied
	}

	if m.Allows(role, r, a) {
		return CellTagBase
	}

	return CellTagNone
}

// UserPermissions is the backend view of one user's grants.
type UserPermissions struct {
	UserID            int64                 `json:"user_id"`
	Role              Role                  `json:"role"`
	Permissions       map[Resource][]Action `json:"permissions"`
	CustomPermissions []CustomPermission    `json:"custom_permissions"`
}

// CustomPermissionRecord is a stored override row.
type CustomPermissionRecord struct {
	UserID    int64     `json:"user_id"`
	Resource  Resource  `json:"resource"`
	Action    Action    `json:"action"`
	Granted   bool      `json:"granted"`
	GrantedBy *int64    `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
}
