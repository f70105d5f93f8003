package entity

import (
	"fmt"
	"maps"
	"slices"
)

// Matrix maps a role to the actions it is granted by default on each resource.
type Matrix map[Role]map[Resource][]Action

var defaultMatrix = Matrix{
	RoleAdmin: {
		ResourceUsers:     {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManageHierarchy},
		ResourceSensors:   {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionAssign},
		ResourceReports:   {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionExport},
		ResourceStores:    {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionAssign},
		ResourceHierarchy: {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceSettings:  {ActionRead, ActionUpdate},
		ResourceSystem:    {ActionBackup, ActionRestore, ActionLogs, ActionMaintenance},
	},
	RoleManager: {
		ResourceUsers:     {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceSensors:   {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceReports:   {ActionRead, ActionExport},
		ResourceStores:    {ActionCreate, ActionRead, ActionUpdate},
		ResourceHierarchy: {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
		ResourceSettings:  {ActionRead},
		ResourceSystem:    {ActionLogs},
	},
	RoleRD: {
		ResourceUsers:     {ActionRead},
		ResourceSensors:   {ActionRead},
		ResourceReports:   {ActionRead, ActionExport},
		ResourceStores:    {ActionRead},
		ResourceHierarchy: {ActionRead},
		ResourceSettings:  {ActionRead},
		ResourceSystem:    {},
	},
	RoleTU: {
		ResourceUsers:     {ActionRead},
		ResourceSensors:   {ActionRead},
		ResourceReports:   {ActionRead, ActionExport},
		ResourceStores:    {ActionRead},
		ResourceHierarchy: {ActionRead},
		ResourceSettings:  {ActionRead},
		ResourceSystem:    {},
	},
	RoleStore: {
		ResourceUsers:     {},
		ResourceSensors:   {ActionRead},
		ResourceReports:   {ActionRead},
		ResourceStores:    {ActionRead},
		ResourceHierarchy: {},
		ResourceSettings:  {ActionRead},
		ResourceSystem:    {},
	},
}

// DefaultMatrix returns a copy of the built-in role defaults.
func DefaultMatrix() Matrix {
	return defaultMatrix.Clone()
}

func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for role, resources := range m {
		rc := make(map[Resource][]Action, len(resources))
		for res, actions := range resources {
			rc[res] = slices.Clone(actions)
		}

		out[role] = rc
	}

	return out
}

// Allows reports whether the role is granted the action on the resource by default.
func (m Matrix) Allows(role Role, r Resource, a Action) bool {
	return slices.Contains(m[role][r], a)
}

// ParseMatrix validates a raw role defaults payload. Unknown roles, resources or
// actions are rejected rather than carried through.
func ParseMatrix(raw map[string]map[string][]string) (Matrix, error) {
	out := make(Matrix, len(raw))

	for _, roleKey := range slices.Sorted(maps.Keys(raw)) {
		role, err := ParseRole(roleKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
		}

		resources := make(map[Resource][]Action, len(raw[roleKey]))

		for resKey, actions := range raw[roleKey] {
			res, err := ParseResource(resKey)
			if err != nil {
				return nil, fmt.Errorf("%w: role %s: %w", ErrInvalidMatrix, role, err)
			}

			parsed := make([]Action, 0, len(actions))

			for _, a := range actions {
				err = ValidatePair(res, Action(a))
				if err != nil {
					return nil, fmt.Errorf("%w: role %s: %w", ErrInvalidMatrix, role, err)
				}

				parsed = append(parsed, Action(a))
			}

			resources[res] = parsed
		}

		out[role] = resources
	}

	return out, nil
}
