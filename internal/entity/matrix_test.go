package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kinimary/belwest/internal/entity"
)

func TestDefaultMatrix_OnlyValidPairs(t *testing.T) {
	t.Parallel()

	m := entity.DefaultMatrix()
	require.Len(t, m, len(entity.Roles()))

	for role, resources := range m {
		for r, actions := range resources {
			for _, a := range actions {
				require.NoError(t, entity.ValidatePair(r, a), "%s %s/%s", role, r, a)
			}
		}
	}
}

func TestDefaultMatrix_IsCopy(t *testing.T) {
	t.Parallel()

	m := entity.DefaultMatrix()
	m[entity.RoleStore][entity.ResourceSystem] = append(m[entity.RoleStore][entity.ResourceSystem], entity.ActionBackup)

	require.False(t, entity.DefaultMatrix().Allows(entity.RoleStore, entity.ResourceSystem, entity.ActionBackup))
}

func TestParseMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   map[string]map[string][]string
		errFn require.ErrorAssertionFunc
	}{
		{
			name:  "valid",
			raw:   map[string]map[string][]string{"manager": {"reports": {"read", "export"}}},
			errFn: require.NoError,
		},
		{
			name:  "unknown role",
			raw:   map[string]map[string][]string{"root": {"reports": {"read"}}},
			errFn: require.Error,
		},
		{
			name:  "unknown resource",
			raw:   map[string]map[string][]string{"admin": {"printers": {"read"}}},
			errFn: require.Error,
		},
		{
			name:  "action not exposed by resource",
			raw:   map[string]map[string][]string{"admin": {"settings": {"export"}}},
			errFn: require.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := entity.ParseMatrix(tt.raw)
			tt.errFn(t, err)

			if err == nil {
				require.True(t, m.Allows(entity.RoleManager, entity.ResourceReports, entity.ActionExport))
			} else {
				require.ErrorIs(t, err, entity.ErrInvalidMatrix)
			}
		})
	}
}

func TestValidatePair(t *testing.T) {
	t.Parallel()

	require.NoError(t, entity.ValidatePair(entity.ResourceUsers, entity.ActionManageHierarchy))
	require.NoError(t, entity.ValidatePair(entity.ResourceSystem, entity.ActionCreate))
	require.ErrorIs(t, entity.ValidatePair(entity.ResourceSettings, entity.ActionAssign), entity.ErrInvalidAction)
	require.ErrorIs(t, entity.ValidatePair("printers", entity.ActionRead), entity.ErrInvalidResource)

	_, _, err := entity.ParsePair("reports", "export")
	require.NoError(t, err)
}

func TestActionsFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, []entity.Action{
		entity.ActionCreate, entity.ActionRead, entity.ActionUpdate, entity.ActionDelete,
		entity.ActionBackup, entity.ActionRestore, entity.ActionLogs, entity.ActionMaintenance,
	}, entity.ActionsFor(entity.ResourceSystem))

	require.Equal(t, entity.BaseActions(), entity.ActionsFor(entity.ResourceHierarchy))
	require.True(t, entity.IsSpecial(entity.ResourceReports, entity.ActionExport))
	require.False(t, entity.IsSpecial(entity.ResourceReports, entity.ActionRead))
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r, err := entity.ParseRole("tu")
	require.NoError(t, err)
	require.Equal(t, "ТУ", r.DisplayName())

	_, err = entity.ParseRole("guest")
	require.ErrorIs(t, err, entity.ErrInvalidRole)
}
