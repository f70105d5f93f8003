package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Kinimary/belwest/internal/entity"
)

const shellHelp = `Команды:
  users                 список пользователей
  select <id>           выбрать пользователя (0 - снять выбор)
  grid                  показать права выбранного пользователя
  grant <res>/<act>     предоставить право
  deny <res>/<act>      отозвать право
  default <res>/<act>   вернуть базовое право роли
  save                  сохранить изменения
  retry                 повторить неудавшиеся изменения
  reset                 сбросить все дополнительные права
  audit                 журнал изменений выбранного пользователя
  matrix                базовые права ролей
  help                  эта справка
  quit                  выход`

// Shell runs a line based editing session until quit or end of input.
// Command errors are printed and the session continues.
func (a *App) Shell(ctx context.Context) error {
	a.print(shellHelp)

	for {
		_, _ = fmt.Fprint(a.out, "> ")

		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)

		if len(fields) > 0 {
			quit, cmdErr := a.exec(ctx, fields[0], fields[1:])
			if cmdErr != nil {
				a.print("ошибка: " + cmdErr.Error())
			}

			if quit {
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			a.warnUnsaved()
			return nil
		}
	}
}

func (a *App) exec(ctx context.Context, name string, args []string) (bool, error) {
	arg := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%s: ожидается один аргумент", name)
		}

		return args[0], nil
	}

	switch name {
	case "users":
		users, err := a.ed.Users(ctx)
		if err != nil {
			return false, err
		}

		a.print(a.render.Users(users))
	case "select":
		raw, err := arg()
		if err != nil {
			return false, err
		}

		if raw == "0" {
			return false, a.ed.SelectUser(ctx, 0)
		}

		if err = a.selectArg(ctx, raw); err != nil {
			return false, err
		}

		a.print(a.render.Grid(a.ed.Grid()))
	case "grid":
		a.print(a.render.Grid(a.ed.Grid()))
	case "grant", "deny", "default":
		raw, err := arg()
		if err != nil {
			return false, err
		}

		mode := map[string]toggleMode{"grant": toggleGrant, "deny": toggleDeny, "default": toggleDefault}[name]
		if err = a.toggle(raw, mode); err != nil {
			return false, err
		}

		a.print(a.render.Grid(a.ed.Grid()))
	case "save":
		return false, a.save(ctx)
	case "retry":
		report, err := a.ed.RetryFailed(ctx)
		if errors.Is(err, entity.ErrNoUserSelected) {
			return false, err
		}

		a.print(a.render.Report(report))

		return false, err
	case "reset":
		return false, a.reset(ctx, false)
	case "audit":
		state, ok := a.ed.Selected()
		if !ok {
			return false, entity.ErrNoUserSelected
		}

		entries, err := a.ed.LoadAudit(ctx, entity.AuditFilter{UserID: &state.UserID})
		if err != nil {
			return false, err
		}

		a.print(a.render.Audit(entries))
	case "matrix":
		if _, ok := a.ed.Selected(); !ok {
			return false, entity.ErrNoUserSelected
		}

		a.print(a.render.Matrix(a.ed.Matrix()))
	case "help":
		a.print(shellHelp)
	case "quit", "exit":
		a.warnUnsaved()
		return true, nil
	default:
		return false, fmt.Errorf("неизвестная команда %q", name)
	}

	return false, nil
}

func (a *App) warnUnsaved() {
	if a.ed.Dirty() {
		a.print("несохраненные изменения не будут записаны")
	}
}
