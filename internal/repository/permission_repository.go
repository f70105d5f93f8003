package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Kinimary/belwest/internal/entity"
)

type PermissionRepository struct {
	db DB
}

func NewPermissionRepository(db DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) CustomPermissions(ctx context.Context, userID int64) ([]entity.CustomPermission, error) {
	q := `
	SELECT resource, action, granted
	FROM custom_permissions
	WHERE user_id = $1
	ORDER BY resource, action`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []entity.CustomPermission{}

	for rows.Next() {
		var p entity.CustomPermission
		if err := rows.Scan(&p.Resource, &p.Action, &p.Granted); err != nil {
			return nil, err
		}

		perms = append(perms, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return perms, nil
}

func (r *PermissionRepository) AllCustomPermissions(ctx context.Context) ([]entity.CustomPermissionRecord, error) {
	q := `
	SELECT user_id, resource, action, granted, granted_by, granted_at
	FROM custom_permissions
	ORDER BY user_id, resource, action`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []entity.CustomPermissionRecord{}

	for rows.Next() {
		var rec entity.CustomPermissionRecord

		err := rows.Scan(&rec.UserID, &rec.Resource, &rec.Action, &rec.Granted, &rec.GrantedBy, &rec.GrantedAt)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpsertCustom replaces the override for the pair and appends an audit row in one transaction.
func (r *PermissionRepository) UpsertCustom(
	ctx context.Context,
	userID, grantedBy int64,
	p entity.CustomPermission,
	at time.Time,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const upsert = `
	INSERT INTO custom_permissions (user_id, resource, action, granted, granted_by, granted_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id, resource, action)
	DO UPDATE SET granted = EXCLUDED.granted, granted_by = EXCLUDED.granted_by, granted_at = EXCLUDED.granted_at`

	_, err = tx.Exec(ctx, upsert, userID, p.Resource, p.Action, p.Granted, grantedBy, at)
	if err != nil {
		return fmt.Errorf("upsert custom permission: %w", err)
	}

	err = insertAudit(ctx, tx, entity.AuditOperationSet, userID, grantedBy, p, at)
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// DeleteCustom removes the override for the pair and logs the removed value as a clear row.
func (r *PermissionRepository) DeleteCustom(
	ctx context.Context,
	userID, changedBy int64,
	res entity.Resource,
	a entity.Action,
	at time.Time,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const q = `
	DELETE FROM custom_permissions
	WHERE user_id = $1 AND resource = $2 AND action = $3
	RETURNING granted`

	p := entity.CustomPermission{Resource: res, Action: a}

	err = tx.QueryRow(ctx, q, userID, res, a).Scan(&p.Granted)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("delete custom permission: %w", err)
	}

	err = insertAudit(ctx, tx, entity.AuditOperationClear, userID, changedBy, p, at)
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// ResetCustom removes every override of the user and logs one reset row per removed pair.
func (r *PermissionRepository) ResetCustom(ctx context.Context, userID, changedBy int64, at time.Time) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const q = `DELETE FROM custom_permissions WHERE user_id = $1 RETURNING resource, action, granted`

	rows, err := tx.Query(ctx, q, userID)
	if err != nil {
		return 0, fmt.Errorf("delete custom permissions: %w", err)
	}

	removed := []entity.CustomPermission{}

	for rows.Next() {
		var p entity.CustomPermission
		if err := rows.Scan(&p.Resource, &p.Action, &p.Granted); err != nil {
			rows.Close()
			return 0, err
		}

		removed = append(removed, p)
	}

	rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, p := range removed {
		err = insertAudit(ctx, tx, entity.AuditOperationReset, userID, changedBy, p, at)
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return int64(len(removed)), nil
}

func insertAudit(
	ctx context.Context,
	tx pgx.Tx,
	op entity.AuditOperation,
	userID, changedBy int64,
	p entity.CustomPermission,
	at time.Time,
) error {
	const q = `
	INSERT INTO permission_audit (user_id, resource, action, granted, granted_by, granted_at, operation)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, q, userID, p.Resource, p.Action, p.Granted, changedBy, at, op)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}

	return nil
}

func (r *PermissionRepository) Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error) {
	sql, args, err := auditQuery(f).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []entity.AuditEntry{}

	for rows.Next() {
		e, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func auditQuery(f entity.AuditFilter) sq.SelectBuilder {
	limit := f.Limit
	if limit == 0 {
		limit = entity.DefaultAuditLimit
	}

	stmt := sq.Select(
		"pa.id",
		"pa.operation",
		"pa.user_id",
		"u.username",
		"u.role",
		"pa.resource",
		"pa.action",
		"pa.granted",
		"pa.granted_by",
		"COALESCE(admin.username, '')",
		"pa.granted_at",
	).
		From("permission_audit pa").
		Join("users u ON pa.user_id = u.id").
		LeftJoin("users admin ON pa.granted_by = admin.id").
		PlaceholderFormat(sq.Dollar)

	if f.UserID != nil {
		stmt = stmt.Where(sq.Eq{"pa.user_id": *f.UserID})
	}

	if f.Resource != nil {
		stmt = stmt.Where(sq.Eq{"pa.resource": *f.Resource})
	}

	if f.Action != nil {
		stmt = stmt.Where(sq.Eq{"pa.action": *f.Action})
	}

	// granted/revoked only describes set rows; clear and reset rows store the removed value.
	if f.Granted != nil {
		stmt = stmt.Where(sq.Eq{"pa.granted": *f.Granted}).
			Where(sq.Eq{"pa.operation": entity.AuditOperationSet})
	}

	if f.Since != nil {
		stmt = stmt.Where(sq.GtOrEq{"pa.granted_at": *f.Since})
	}

	return stmt.OrderBy("pa.granted_at DESC", "pa.id DESC").Limit(limit)
}

func scanAudit(row pgx.Row) (e entity.AuditEntry, err error) {
	err = row.Scan(
		&e.ID,
		&e.Operation,
		&e.UserID,
		&e.Username,
		&e.Role,
		&e.Resource,
		&e.Action,
		&e.Granted,
		&e.GrantedBy,
		&e.GrantedByName,
		&e.GrantedAt,
	)

	return e, err
}
