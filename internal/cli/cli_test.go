package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kinimary/belwest/internal/cli"
	"github.com/Kinimary/belwest/internal/editor"
	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/internal/mocks"
	"github.com/Kinimary/belwest/internal/view"
	"github.com/Kinimary/belwest/pkg/token"
)

const userID = int64(12)

type fixture struct {
	backend *mocks.MockBackend
	out     *bytes.Buffer
	app     *cli.App
}

func newFixture(t *testing.T, input string) *fixture {
	t.Helper()

	backend := mocks.NewMockBackend(gomock.NewController(t))
	out := &bytes.Buffer{}
	ed := editor.New(backend, view.NewToaster(out, view.DefaultTheme()), 2)

	return &fixture{
		backend: backend,
		out:     out,
		app:     cli.NewApp(ed, nil, view.NewRenderer(view.DefaultTheme()), strings.NewReader(input), out),
	}
}

func rawMatrix() map[string]map[string][]string {
	raw := map[string]map[string][]string{}

	for role, resources := range entity.DefaultMatrix() {
		raw[string(role)] = map[string][]string{}

		for r, actions := range resources {
			list := make([]string, 0, len(actions))
			for _, a := range actions {
				list = append(list, string(a))
			}

			raw[string(role)][string(r)] = list
		}
	}

	return raw
}

func (f *fixture) expectUser(custom ...entity.CustomPermission) {
	f.backend.EXPECT().Matrix(gomock.Any()).Return(rawMatrix(), nil).AnyTimes()
	f.backend.EXPECT().UserPermissions(gomock.Any(), userID).Return(entity.UserPermissions{
		UserID:            userID,
		Role:              entity.RoleManager,
		CustomPermissions: custom,
	}, nil).AnyTimes()
}

func (f *fixture) run(args ...string) error {
	root := cli.NewRootCommand(f.app)
	root.SetArgs(args)
	root.SetOut(f.out)
	root.SetErr(f.out)

	return root.ExecuteContext(context.Background())
}

func TestEdit_GrantSavesOneOverride(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.expectUser()

	want := entity.CustomPermission{Resource: entity.ResourceSensors, Action: entity.ActionAssign, Granted: true}
	f.backend.EXPECT().UpsertCustom(gomock.Any(), userID, want).Return(nil)
	f.backend.EXPECT().Audit(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, f.run("edit", "12", "--grant", "sensors/assign"))
	require.Contains(t, f.out.String(), "[x]+")
	require.Contains(t, f.out.String(), "sensors/assign = true")
	require.Contains(t, f.out.String(), "Права доступа успешно сохранены")
}

func TestEdit_DefaultClearsOverrideWithoutWrites(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.expectUser()

	require.NoError(t, f.run("edit", "12", "--deny", "reports/export", "--default", "reports/export"))
	require.Contains(t, f.out.String(), "нет изменений")
}

func TestEdit_DryRunDoesNotSave(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.expectUser()

	require.NoError(t, f.run("edit", "12", "--deny", "reports/export", "--dry-run"))
	require.Contains(t, f.out.String(), "[ ]-")
}

func TestEdit_InvalidPair(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.expectUser()

	err := f.run("edit", "12", "--grant", "settings/assign")
	require.ErrorIs(t, err, entity.ErrInvalidAction)

	err = f.run("edit", "12", "--grant", "settings")
	require.Error(t, err)
}

func TestShow_InvalidUserID(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")

	require.Error(t, f.run("show", "abc"))
	require.Error(t, f.run("show", "-1"))
}

func TestReset_Confirmed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "да\n")
	f.expectUser()
	f.backend.EXPECT().ResetCustom(gomock.Any(), userID).Return(nil)

	require.NoError(t, f.run("reset", "12"))
	require.Contains(t, f.out.String(), "Права доступа сброшены к базовым")
}

func TestReset_Declined(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "n\n")
	f.expectUser()

	err := f.run("reset", "12")
	require.ErrorIs(t, err, entity.ErrResetNotConfirmed)
}

func TestAudit_Filters(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.backend.EXPECT().Audit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter entity.AuditFilter) ([]entity.AuditEntry, error) {
			require.NotNil(t, filter.UserID)
			require.Equal(t, userID, *filter.UserID)
			require.NotNil(t, filter.Resource)
			require.Equal(t, entity.ResourceReports, *filter.Resource)
			require.NotNil(t, filter.Granted)
			require.False(t, *filter.Granted)
			require.EqualValues(t, 10, filter.Limit)

			return []entity.AuditEntry{{UserID: userID, Username: "sidorov", Role: entity.RoleManager,
				Resource: entity.ResourceReports, Action: entity.ActionExport}}, nil
		})

	require.NoError(t, f.run("audit", "--user", "12", "--resource", "reports", "--granted", "false", "--limit", "10"))
	require.Contains(t, f.out.String(), "sidorov")

	require.Error(t, f.run("audit", "--resource", "printers"))
}

func TestShell_Session(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"select 12",
		"deny reports/export",
		"grant system/logs",
		"bogus",
		"save",
		"quit",
	}, "\n") + "\n"

	f := newFixture(t, input)
	f.expectUser()
	f.backend.EXPECT().UpsertCustom(gomock.Any(), userID,
		entity.CustomPermission{Resource: entity.ResourceReports, Action: entity.ActionExport, Granted: false}).Return(nil)
	f.backend.EXPECT().Audit(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, f.run("shell"))

	out := f.out.String()
	require.Contains(t, out, "неизвестная команда")
	require.Contains(t, out, "reports/export = false")
}

func TestShell_WarnsAboutUnsavedChangesAtEOF(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "select 12\ngrant system/backup")
	f.expectUser()

	require.NoError(t, f.run("shell"))
	require.Contains(t, f.out.String(), "несохраненные изменения не будут записаны")
}

func TestTokenCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	tokens := token.NewManager("0123456789abcdef0123", "belwest")

	cmd := cli.NewTokenCommand(tokens, &out)
	cmd.SetArgs([]string{"--user", "3", "--role", "manager"})
	require.NoError(t, cmd.Execute())

	caller, err := tokens.Parse(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	require.Equal(t, entity.Caller{UserID: 3, Role: entity.RoleManager}, caller)

	cmd = cli.NewTokenCommand(nil, &out)
	cmd.SetArgs([]string{"--user", "3"})
	require.Error(t, cmd.Execute())
}
