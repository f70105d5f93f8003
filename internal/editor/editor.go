package editor

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Kinimary/belwest/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=editor.go -destination=../mocks/editor.go -package=mocks

// Backend is the REST surface the editor works against.
type Backend interface {
	Matrix(ctx context.Context) (map[string]map[string][]string, error)
	Users(ctx context.Context) ([]entity.User, error)
	UserPermissions(ctx context.Context, userID int64) (entity.UserPermissions, error)
	UpsertCustom(ctx context.Context, userID int64, p entity.CustomPermission) error
	DeleteCustom(ctx context.Context, userID int64, r entity.Resource, a entity.Action) error
	ResetCustom(ctx context.Context, userID int64) error
	Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error)
}

var ErrPartialSave = errors.New("some permission changes were not saved")

const DefaultParallelism = 8

// Write is one request of a save: an upsert of Entry, or a delete of its pair when Clear is set.
type Write struct {
	Entry entity.CustomPermission
	Clear bool
}

type FailedWrite struct {
	Write
	Err error
}

type SaveReport struct {
	UserID  int64
	Saved   []entity.CustomPermission
	Cleared []entity.CustomPermission
	Failed  []FailedWrite
}

func (r SaveReport) OK() bool {
	return len(r.Failed) == 0
}

// Editor owns the working permission state of one selected user. It is not safe
// for concurrent use.
type Editor struct {
	backend     Backend
	notifier    Notifier
	parallelism int

	matrix    entity.Matrix
	selected  *entity.UserPermissionState
	persisted entity.CustomPermissions
	failed    []Write
	audit     []entity.AuditEntry
}

func New(backend Backend, notifier Notifier, parallelism int) *Editor {
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}

	return &Editor{
		backend:     backend,
		notifier:    notifier,
		parallelism: parallelism,
	}
}

// SelectUser loads the user's role and overrides together with fresh role
// defaults. Zero deselects. On failure the previous state is kept.
func (e *Editor) SelectUser(ctx context.Context, userID int64) error {
	return e.load(ctx, userID, true)
}

func (e *Editor) load(ctx context.Context, userID int64, warnDirty bool) error {
	if userID == 0 {
		e.warnDiscard(ctx, warnDirty)
		e.clear()

		return nil
	}

	var (
		rawMatrix map[string]map[string][]string
		perms     entity.UserPermissions
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rawMatrix, err = e.backend.Matrix(gctx)

		return err
	})

	g.Go(func() error {
		var err error
		perms, err = e.backend.UserPermissions(gctx, userID)

		return err
	})

	err := g.Wait()
	if err != nil {
		e.notify(ctx, LevelError, userID, "Ошибка загрузки прав пользователя")
		return fmt.Errorf("load user %d: %w", userID, err)
	}

	m, err := entity.ParseMatrix(rawMatrix)
	if err != nil {
		e.notify(ctx, LevelError, userID, "Ошибка загрузки матрицы прав")
		return err
	}

	state, err := parseState(userID, perms)
	if err != nil {
		e.notify(ctx, LevelError, userID, "Некорректные права пользователя")
		return err
	}

	e.warnDiscard(ctx, warnDirty)

	e.matrix = m
	e.selected = &state
	e.persisted = entity.NewCustomPermissions(state.Custom.Entries()...)
	e.failed = nil

	return nil
}

func parseState(userID int64, p entity.UserPermissions) (entity.UserPermissionState, error) {
	role, err := entity.ParseRole(string(p.Role))
	if err != nil {
		return entity.UserPermissionState{}, fmt.Errorf("user %d: %w", userID, err)
	}

	var custom entity.CustomPermissions

	for _, c := range p.CustomPermissions {
		err = entity.ValidatePair(c.Resource, c.Action)
		if err != nil {
			return entity.UserPermissionState{}, fmt.Errorf("user %d: %w", userID, err)
		}

		custom.Upsert(c)
	}

	return entity.UserPermissionState{UserID: userID, Role: role, Custom: custom}, nil
}

func (e *Editor) warnDiscard(ctx context.Context, warn bool) {
	if warn && e.Dirty() {
		e.notify(ctx, LevelWarning, e.selected.UserID, "Несохраненные изменения отменены")
	}
}

func (e *Editor) clear() {
	e.selected = nil
	e.persisted = entity.CustomPermissions{}
	e.failed = nil
}

// Selected returns a copy of the working state.
func (e *Editor) Selected() (entity.UserPermissionState, bool) {
	if e.selected == nil {
		return entity.UserPermissionState{}, false
	}

	s := *e.selected
	s.Custom = entity.NewCustomPermissions(e.selected.Custom.Entries()...)

	return s, true
}

func (e *Editor) Grid() Grid {
	if e.selected == nil {
		return Grid{}
	}

	return Grid{
		Visible: true,
		UserID:  e.selected.UserID,
		Role:    e.selected.Role,
		Dirty:   e.Dirty(),
		Rows:    buildGrid(e.matrix, *e.selected),
	}
}

// Toggle sets the desired value of a cell. A value equal to the role default
// removes the override instead of storing it.
func (e *Editor) Toggle(r entity.Resource, a entity.Action, granted bool) error {
	if e.selected == nil {
		return entity.ErrNoUserSelected
	}

	err := entity.ValidatePair(r, a)
	if err != nil {
		return err
	}

	if granted == e.matrix.Allows(e.selected.Role, r, a) {
		e.selected.Custom.Remove(r, a)
		return nil
	}

	e.selected.Custom.Upsert(entity.CustomPermission{Resource: r, Action: a, Granted: granted})

	return nil
}

func (e *Editor) Dirty() bool {
	return e.selected != nil && !e.selected.Custom.Equal(e.persisted)
}

// Save writes every working override and deletes persisted overrides that were
// cleared locally. Failed writes are kept for RetryFailed.
func (e *Editor) Save(ctx context.Context) (SaveReport, error) {
	if e.selected == nil {
		e.notify(ctx, LevelWarning, 0, "Пользователь не выбран")
		return SaveReport{}, entity.ErrNoUserSelected
	}

	writes := make([]Write, 0, e.selected.Custom.Len())

	for _, c := range e.selected.Custom.Entries() {
		writes = append(writes, Write{Entry: c})
	}

	for _, p := range e.persisted.Entries() {
		if _, ok := e.selected.Custom.Find(p.Resource, p.Action); !ok {
			writes = append(writes, Write{Entry: p, Clear: true})
		}
	}

	return e.run(ctx, writes)
}

// RetryFailed re-sends the writes that failed in the last save and still match the working state.
func (e *Editor) RetryFailed(ctx context.Context) (SaveReport, error) {
	if e.selected == nil {
		return SaveReport{}, entity.ErrNoUserSelected
	}

	writes := make([]Write, 0, len(e.failed))

	for _, w := range e.failed {
		cur, ok := e.selected.Custom.Find(w.Entry.Resource, w.Entry.Action)

		switch {
		case w.Clear && !ok:
			writes = append(writes, w)
		case !w.Clear && ok && cur.Granted == w.Entry.Granted:
			writes = append(writes, w)
		}
	}

	return e.run(ctx, writes)
}

// run sends the writes concurrently. An empty batch sends nothing and neither
// notifies nor refreshes the audit trail.
func (e *Editor) run(ctx context.Context, writes []Write) (SaveReport, error) {
	userID := e.selected.UserID

	if len(writes) == 0 {
		e.failed = nil
		return SaveReport{UserID: userID}, nil
	}

	errs := make([]error, len(writes))

	var g errgroup.Group

	g.SetLimit(e.parallelism)

	for i, w := range writes {
		g.Go(func() error {
			if w.Clear {
				errs[i] = e.backend.DeleteCustom(ctx, userID, w.Entry.Resource, w.Entry.Action)
				// An override already gone is cleared; a missing user is a failure.
				if errors.Is(errs[i], entity.ErrNotFound) && !errors.Is(errs[i], entity.ErrUserNotFound) {
					errs[i] = nil
				}
			} else {
				errs[i] = e.backend.UpsertCustom(ctx, userID, w.Entry)
			}

			return nil
		})
	}

	_ = g.Wait()

	report := SaveReport{UserID: userID}
	e.failed = nil

	for i, w := range writes {
		switch {
		case errs[i] != nil:
			report.Failed = append(report.Failed, FailedWrite{Write: w, Err: errs[i]})
			e.failed = append(e.failed, w)
		case w.Clear:
			report.Cleared = append(report.Cleared, w.Entry)
			e.persisted.Remove(w.Entry.Resource, w.Entry.Action)
		default:
			report.Saved = append(report.Saved, w.Entry)
			e.persisted.Upsert(w.Entry)
		}
	}

	if report.OK() {
		e.notify(ctx, LevelSuccess, userID, "Права доступа успешно сохранены")
	} else {
		e.notify(ctx, LevelError, userID, fmt.Sprintf("Ошибка сохранения прав доступа: %d из %d изменений не сохранены",
			len(report.Failed), len(writes)))
	}

	_, err := e.LoadAudit(ctx, entity.AuditFilter{UserID: &userID})
	if err != nil {
		e.notify(ctx, LevelWarning, userID, "Не удалось обновить журнал аудита")
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d", ErrPartialSave, len(report.Failed), len(writes))
	}

	return report, nil
}

// Reset deletes every override of the selected user once confirm agrees, then reloads the user.
func (e *Editor) Reset(ctx context.Context, confirm func() bool) error {
	if e.selected == nil {
		return entity.ErrNoUserSelected
	}

	userID := e.selected.UserID

	if confirm == nil || !confirm() {
		e.notify(ctx, LevelInfo, userID, "Сброс отменен")
		return entity.ErrResetNotConfirmed
	}

	err := e.backend.ResetCustom(ctx, userID)
	if err != nil {
		e.notify(ctx, LevelError, userID, "Ошибка сброса прав доступа")
		return fmt.Errorf("reset user %d: %w", userID, err)
	}

	err = e.load(ctx, userID, false)
	if err != nil {
		return err
	}

	e.notify(ctx, LevelSuccess, userID, "Права доступа сброшены к базовым")

	return nil
}

// LoadAudit fetches the audit trail. The last result is kept for Audit.
func (e *Editor) LoadAudit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error) {
	entries, err := e.backend.Audit(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load audit: %w", err)
	}

	e.audit = entries

	return entries, nil
}

func (e *Editor) Audit() []entity.AuditEntry {
	return e.audit
}

func (e *Editor) Users(ctx context.Context) ([]entity.User, error) {
	users, err := e.backend.Users(ctx)
	if err != nil {
		e.notify(ctx, LevelError, 0, "Ошибка загрузки пользователей")
		return nil, fmt.Errorf("load users: %w", err)
	}

	return users, nil
}

// Matrix returns the role defaults loaded with the current selection.
func (e *Editor) Matrix() entity.Matrix {
	return e.matrix.Clone()
}

func (e *Editor) notify(ctx context.Context, level Level, userID int64, msg string) {
	if e.notifier == nil {
		return
	}

	e.notifier.Notify(ctx, Notification{Level: level, Message: msg, UserID: userID})
}
