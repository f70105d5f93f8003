package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kinimary/belwest/internal/editor"
	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/internal/view"
)

// Checker asks the backend about the permissions of the token owner.
type Checker interface {
	Check(ctx context.Context, r entity.Resource, a entity.Action) (bool, error)
}

// App binds one editor session to a terminal.
type App struct {
	ed      *editor.Editor
	checker Checker
	render  view.Renderer
	in      *bufio.Reader
	out     io.Writer
}

func NewApp(ed *editor.Editor, checker Checker, render view.Renderer, in io.Reader, out io.Writer) *App {
	return &App{
		ed:      ed,
		checker: checker,
		render:  render,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) print(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

// NewRootCommand builds the permctl command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "permctl",
		Short:         "permctl edits per-user permission overrides",
		Long:          "permctl shows role defaults and edits per-user overrides of the BELWEST permissions service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		app.usersCmd(),
		app.matrixCmd(),
		app.showCmd(),
		app.editCmd(),
		app.resetCmd(),
		app.auditCmd(),
		app.checkCmd(),
		app.shellCmd(),
	)

	return root
}

func (a *App) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := a.ed.Users(cmd.Context())
			if err != nil {
				return err
			}

			a.print(a.render.Users(users))

			return nil
		},
	}
}

func (a *App) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <user_id>",
		Short: "Show role defaults as loaded for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.selectArg(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			a.print(a.render.Matrix(a.ed.Matrix()))

			return nil
		},
	}
}

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user_id>",
		Short: "Show the permission grid of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.selectArg(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			a.print(a.render.Grid(a.ed.Grid()))

			return nil
		},
	}
}

func (a *App) editCmd() *cobra.Command {
	var (
		grant, deny, reset []string
		dryRun             bool
	)

	cmd := &cobra.Command{
		Use:   "edit <user_id>",
		Short: "Change permissions of a user and save the overrides",
		Example: "  permctl edit 12 --grant sensors/assign --deny reports/export\n" +
			"  permctl edit 12 --default reports/export --dry-run",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			err := a.selectArg(ctx, args[0])
			if err != nil {
				return err
			}

			for _, p := range grant {
				if err = a.toggle(p, toggleGrant); err != nil {
					return err
				}
			}

			for _, p := range deny {
				if err = a.toggle(p, toggleDeny); err != nil {
					return err
				}
			}

			for _, p := range reset {
				if err = a.toggle(p, toggleDefault); err != nil {
					return err
				}
			}

			a.print(a.render.Grid(a.ed.Grid()))

			if dryRun {
				return nil
			}

			return a.save(ctx)
		},
	}

	cmd.Flags().StringSliceVar(&grant, "grant", nil, "grant resource/action")
	cmd.Flags().StringSliceVar(&deny, "deny", nil, "deny resource/action")
	cmd.Flags().StringSliceVar(&reset, "default", nil, "return resource/action to the role default")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the resulting grid without saving")

	return cmd
}

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <user_id>",
		Short: "Remove every override of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			err := a.selectArg(ctx, args[0])
			if err != nil {
				return err
			}

			return a.reset(ctx, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func (a *App) auditCmd() *cobra.Command {
	var (
		userID           int64
		resource, action string
		granted, since   string
		limit            uint64
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the permission change log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := entity.AuditFilter{Limit: limit}

			if userID != 0 {
				f.UserID = &userID
			}

			if resource != "" {
				r, err := entity.ParseResource(resource)
				if err != nil {
					return err
				}

				f.Resource = &r
			}

			if action != "" {
				act, err := entity.ParseAction(action)
				if err != nil {
					return err
				}

				f.Action = &act
			}

			if granted != "" {
				g, err := strconv.ParseBool(granted)
				if err != nil {
					return fmt.Errorf("parse --granted: %w", err)
				}

				f.Granted = &g
			}

			if since != "" {
				t, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("parse --since: %w", err)
				}

				f.Since = &t
			}

			entries, err := a.ed.LoadAudit(cmd.Context(), f)
			if err != nil {
				return err
			}

			a.print(a.render.Audit(entries))

			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "only changes of this user")
	cmd.Flags().StringVar(&resource, "resource", "", "only this resource")
	cmd.Flags().StringVar(&action, "action", "", "only this action")
	cmd.Flags().StringVar(&granted, "granted", "", "true for grants, false for revocations")
	cmd.Flags().StringVar(&since, "since", "", "only changes after this RFC3339 time")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of entries")

	return cmd
}

func (a *App) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <resource>/<action>",
		Short: "Check a permission of the token owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.checker == nil {
				return errors.New("permission check is not available")
			}

			r, act, err := parsePair(args[0])
			if err != nil {
				return err
			}

			ok, err := a.checker.Check(cmd.Context(), r, act)
			if err != nil {
				return err
			}

			if ok {
				a.print(fmt.Sprintf("%s/%s: разрешено", r, act))
			} else {
				a.print(fmt.Sprintf("%s/%s: запрещено", r, act))
			}

			return nil
		},
	}
}

func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive editing session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Shell(cmd.Context())
		},
	}
}

func (a *App) selectArg(ctx context.Context, raw string) error {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid user id %q", raw)
	}

	return a.ed.SelectUser(ctx, id)
}

type toggleMode int

const (
	toggleGrant toggleMode = iota
	toggleDeny
	toggleDefault
)

func (a *App) toggle(raw string, mode toggleMode) error {
	r, act, err := parsePair(raw)
	if err != nil {
		return err
	}

	var granted bool

	switch mode {
	case toggleGrant:
		granted = true
	case toggleDeny:
		granted = false
	case toggleDefault:
		state, ok := a.ed.Selected()
		if !ok {
			return entity.ErrNoUserSelected
		}

		granted = a.ed.Matrix().Allows(state.Role, r, act)
	}

	return a.ed.Toggle(r, act, granted)
}

func (a *App) save(ctx context.Context) error {
	report, err := a.ed.Save(ctx)
	if errors.Is(err, entity.ErrNoUserSelected) {
		return err
	}

	a.print(a.render.Report(report))

	return err
}

func (a *App) reset(ctx context.Context, yes bool) error {
	state, ok := a.ed.Selected()
	if !ok {
		return entity.ErrNoUserSelected
	}

	confirm := func() bool {
		if yes {
			return true
		}

		return a.confirm(fmt.Sprintf("Сбросить все дополнительные права пользователя #%d? [y/N] ", state.UserID))
	}

	err := a.ed.Reset(ctx, confirm)
	if err != nil {
		return err
	}

	a.print(a.render.Grid(a.ed.Grid()))

	return nil
}

func (a *App) confirm(prompt string) bool {
	_, _ = fmt.Fprint(a.out, prompt)

	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	default:
		return false
	}
}

func parsePair(raw string) (entity.Resource, entity.Action, error) {
	res, act, ok := strings.Cut(raw, "/")
	if !ok {
		return "", "", fmt.Errorf("expected resource/action, got %q", raw)
	}

	return entity.ParsePair(res, act)
}
