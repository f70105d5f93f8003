package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type PermissionRepository interface {
	CustomPermissions(ctx context.Context, userID int64) ([]entity.CustomPermission, error)
	AllCustomPermissions(ctx context.Context) ([]entity.CustomPermissionRecord, error)
	UpsertCustom(ctx context.Context, userID, grantedBy int64, p entity.CustomPermission, at time.Time) error
	DeleteCustom(ctx context.Context, userID, changedBy int64, r entity.Resource, a entity.Action, at time.Time) error
	ResetCustom(ctx context.Context, userID, changedBy int64, at time.Time) (int64, error)
	Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error)
}

type UserRepository interface {
	Users(ctx context.Context) ([]entity.User, error)
	User(ctx context.Context, id int64) (entity.User, error)
}

type EventPublisher interface {
	PublishPermissionChanged(ctx context.Context, event broker.PermissionChangedEvent)
}

type Service struct {
	perms     PermissionRepository
	users     UserRepository
	publisher EventPublisher
	matrix    entity.Matrix
	now       func() time.Time
}

func New(perms PermissionRepository, users UserRepository, publisher EventPublisher) *Service {
	return &Service{
		perms:     perms,
		users:     users,
		publisher: publisher,
		matrix:    entity.DefaultMatrix(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Matrix(_ context.Context) entity.Matrix {
	return s.matrix.Clone()
}

func (s *Service) Users(ctx context.Context) ([]entity.User, error) {
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (s *Service) UserPermissions(ctx context.Context, userID int64) (entity.UserPermissions, error) {
	user, err := s.users.User(ctx, userID)
	if err != nil {
		return entity.UserPermissions{}, fmt.Errorf("get user %d: %w", userID, err)
	}

	custom, err := s.perms.CustomPermissions(ctx, userID)
	if err != nil {
		return entity.UserPermissions{}, fmt.Errorf("get custom permissions of user %d: %w", userID, err)
	}

	set := entity.NewCustomPermissions(custom...)

	return entity.UserPermissions{
		UserID:            user.ID,
		Role:              user.Role,
		Permissions:       entity.EffectiveSet(s.matrix, user.Role, set),
		CustomPermissions: set.Entries(),
	}, nil
}

// CheckPermission resolves one pair for a user: a stored override wins over the role default.
func (s *Service) CheckPermission(
	ctx context.Context,
	userID int64,
	role entity.Role,
	r entity.Resource,
	a entity.Action,
) (bool, error) {
	err := entity.ValidatePair(r, a)
	if err != nil {
		return false, err
	}

	custom, err := s.perms.CustomPermissions(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get custom permissions of user %d: %w", userID, err)
	}

	return entity.Effective(s.matrix, role, entity.NewCustomPermissions(custom...), r, a), nil
}

func (s *Service) CustomPermissions(ctx context.Context) ([]entity.CustomPermissionRecord, error) {
	records, err := s.perms.AllCustomPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom permissions: %w", err)
	}

	return records, nil
}

func (s *Service) UpsertCustom(ctx context.Context, grantedBy, userID int64, p entity.CustomPermission) error {
	err := entity.ValidatePair(p.Resource, p.Action)
	if err != nil {
		return err
	}

	err = s.checkUsers(ctx, grantedBy, userID)
	if err != nil {
		return err
	}

	at := s.now()

	err = s.perms.UpsertCustom(ctx, userID, grantedBy, p, at)
	if err != nil {
		return fmt.Errorf("upsert custom permission %s/%s of user %d: %w", p.Resource, p.Action, userID, err)
	}

	eventType := broker.EventPermissionGranted
	if !p.Granted {
		eventType = broker.EventPermissionRevoked
	}

	granted := p.Granted

	s.publisher.PublishPermissionChanged(ctx, broker.PermissionChangedEvent{
		Type:      eventType,
		UserID:    userID,
		Resource:  string(p.Resource),
		Action:    string(p.Action),
		Granted:   &granted,
		ChangedBy: grantedBy,
		ChangedAt: at,
	})

	slog.InfoContext(ctx, "custom permission saved",
		"target_user_id", userID, "resource", p.Resource, "action", p.Action, "granted", p.Granted)

	return nil
}

func (s *Service) DeleteCustom(ctx context.Context, changedBy, userID int64, r entity.Resource, a entity.Action) error {
	err := entity.ValidatePair(r, a)
	if err != nil {
		return err
	}

	err = s.checkUsers(ctx, changedBy, userID)
	if err != nil {
		return err
	}

	at := s.now()

	err = s.perms.DeleteCustom(ctx, userID, changedBy, r, a, at)
	if err != nil {
		return fmt.Errorf("delete custom permission %s/%s of user %d: %w", r, a, userID, err)
	}

	s.publisher.PublishPermissionChanged(ctx, broker.PermissionChangedEvent{
		Type:      broker.EventPermissionCleared,
		UserID:    userID,
		Resource:  string(r),
		Action:    string(a),
		ChangedBy: changedBy,
		ChangedAt: at,
	})

	slog.InfoContext(ctx, "custom permission cleared", "target_user_id", userID, "resource", r, "action", a)

	return nil
}

// ResetCustom removes every override of the user and returns how many rows were deleted.
func (s *Service) ResetCustom(ctx context.Context, changedBy, userID int64) (int64, error) {
	err := s.checkUsers(ctx, changedBy, userID)
	if err != nil {
		return 0, err
	}

	at := s.now()

	n, err := s.perms.ResetCustom(ctx, userID, changedBy, at)
	if err != nil {
		return 0, fmt.Errorf("reset custom permissions of user %d: %w", userID, err)
	}

	s.publisher.PublishPermissionChanged(ctx, broker.PermissionChangedEvent{
		Type:      broker.EventPermissionReset,
		UserID:    userID,
		ChangedBy: changedBy,
		ChangedAt: at,
	})

	slog.InfoContext(ctx, "custom permissions reset", "target_user_id", userID, "deleted", n)

	return n, nil
}

// checkUsers makes sure the operator taken from the token and the target user
// both exist. An operator missing from users is refused with ErrForbidden.
func (s *Service) checkUsers(ctx context.Context, operatorID, userID int64) error {
	_, err := s.users.User(ctx, operatorID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return fmt.Errorf("%w: operator %d is not a known user", entity.ErrForbidden, operatorID)
	}

	if err != nil {
		return fmt.Errorf("get operator %d: %w", operatorID, err)
	}

	_, err = s.users.User(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user %d: %w", userID, err)
	}

	return nil
}

func (s *Service) Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error) {
	if f.Resource != nil && f.Action != nil {
		err := entity.ValidatePair(*f.Resource, *f.Action)
		if err != nil {
			return nil, err
		}
	}

	entries, err := s.perms.Audit(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}

	return entries, nil
}
