package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kinimary/belwest/internal/entity"
)

func TestAuditQuery(t *testing.T) {
	t.Parallel()

	t.Run("no filters uses default limit", func(t *testing.T) {
		t.Parallel()

		sql, args, err := auditQuery(entity.AuditFilter{}).ToSql()
		require.NoError(t, err)
		require.NotContains(t, sql, "WHERE")
		require.Contains(t, sql, "SELECT pa.id, pa.operation, pa.user_id")
		require.Contains(t, sql, "ORDER BY pa.granted_at DESC, pa.id DESC LIMIT 200")
		require.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		t.Parallel()

		userID := int64(7)
		res := entity.ResourceReports
		act := entity.ActionExport
		granted := false
		since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		sql, args, err := auditQuery(entity.AuditFilter{
			UserID:   &userID,
			Resource: &res,
			Action:   &act,
			Granted:  &granted,
			Since:    &since,
			Limit:    20,
		}).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "pa.user_id = $1")
		require.Contains(t, sql, "pa.resource = $2")
		require.Contains(t, sql, "pa.action = $3")
		require.Contains(t, sql, "pa.granted = $4")
		require.Contains(t, sql, "pa.operation = $5")
		require.Contains(t, sql, "pa.granted_at >= $6")
		require.Contains(t, sql, "LIMIT 20")
		require.Equal(t, []any{userID, res, act, granted, entity.AuditOperationSet, since}, args)
	})
}
