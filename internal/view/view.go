package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kinimary/belwest/internal/editor"
	"github.com/Kinimary/belwest/internal/entity"
)

const (
	columnWidthResource = 16
	columnWidthAction   = 12
	timeLayout          = "02.01.2006 15:04:05"
)

// Theme holds the terminal colors of the editor.
type Theme struct {
	Header  lipgloss.Color
	Muted   lipgloss.Color
	Base    lipgloss.Color
	Granted lipgloss.Color
	Denied  lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Header:  lipgloss.Color("12"),
		Muted:   lipgloss.Color("8"),
		Base:    lipgloss.Color("7"),
		Granted: lipgloss.Color("10"),
		Denied:  lipgloss.Color("9"),
		Warning: lipgloss.Color("11"),
		Info:    lipgloss.Color("14"),
	}
}

type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) Renderer {
	return Renderer{theme: theme}
}

func (r Renderer) header(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(r.theme.Header).Render(s)
}

func (r Renderer) muted(s string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Muted).Render(s)
}

// cellMark is "[x]"/"[ ]" followed by "+" for a granting override, "-" for a
// denying one and a blank otherwise.
func (r Renderer) cellMark(c editor.Cell) string {
	mark := "[ ] "
	if c.Checked {
		mark = "[x] "
	}

	style := lipgloss.NewStyle().Foreground(r.theme.Muted)

	switch c.Tag {
	case entity.CellTagBase:
		style = style.Foreground(r.theme.Base)
	case entity.CellTagGranted:
		mark = mark[:3] + "+"
		style = style.Foreground(r.theme.Granted).Bold(true)
	case entity.CellTagDenied:
		mark = mark[:3] + "-"
		style = style.Foreground(r.theme.Denied).Bold(true)
	case entity.CellTagNone:
	}

	return style.Render(mark)
}

// Grid renders the CRUD columns as a table and the special actions of every
// resource in a trailing column.
func (r Renderer) Grid(g editor.Grid) string {
	if !g.Visible {
		return r.muted("Пользователь не выбран")
	}

	var b strings.Builder

	title := fmt.Sprintf("Пользователь #%d · %s", g.UserID, g.Role.DisplayName())
	if g.Dirty {
		title += " · " + lipgloss.NewStyle().Foreground(r.theme.Warning).Render("есть несохраненные изменения")
	}

	b.WriteString(r.header(title))
	b.WriteString("\n\n")

	resStyle := lipgloss.NewStyle().Width(columnWidthResource)
	actStyle := lipgloss.NewStyle().Width(columnWidthAction)

	b.WriteString(resStyle.Render(r.muted("Ресурс")))

	for _, a := range entity.BaseActions() {
		b.WriteString(actStyle.Render(r.muted(a.DisplayName())))
	}

	b.WriteString(r.muted("Специальные права"))
	b.WriteString("\n")

	for _, row := range g.Rows {
		b.WriteString(resStyle.Render(row.Resource.DisplayName()))

		var special []string

		for _, c := range row.Cells {
			if c.Special {
				special = append(special, r.cellMark(c)+" "+c.Action.DisplayName())
				continue
			}

			b.WriteString(actStyle.Render(r.cellMark(c)))
		}

		b.WriteString(strings.Join(special, "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.muted("[x] базовое право роли   [x]+ предоставлено дополнительно   [ ]- отозвано"))

	return b.String()
}

func (r Renderer) Users(users []entity.User) string {
	if len(users) == 0 {
		return r.muted("Пользователи не найдены")
	}

	idStyle := lipgloss.NewStyle().Width(6)
	nameStyle := lipgloss.NewStyle().Width(24)

	lines := make([]string, 0, len(users)+1)
	lines = append(lines, r.header(idStyle.Render("ID")+nameStyle.Render("Логин")+"Роль"))

	for _, u := range users {
		lines = append(lines, idStyle.Render(fmt.Sprint(u.ID))+nameStyle.Render(u.Username)+u.Role.DisplayName())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Matrix renders the role defaults, one block per role.
func (r Renderer) Matrix(m entity.Matrix) string {
	blocks := make([]string, 0, len(entity.Roles()))
	resStyle := lipgloss.NewStyle().Width(columnWidthResource)

	for _, role := range entity.Roles() {
		resources, ok := m[role]
		if !ok {
			continue
		}

		lines := []string{r.header(role.DisplayName())}

		for _, res := range entity.Resources() {
			names := make([]string, 0, len(resources[res]))
			for _, a := range resources[res] {
				names = append(names, a.DisplayName())
			}

			granted := r.muted("нет прав")
			if len(names) > 0 {
				granted = strings.Join(names, ", ")
			}

			lines = append(lines, resStyle.Render(res.DisplayName())+granted)
		}

		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	return strings.Join(blocks, "\n\n")
}

// Audit renders the trail newest first as returned by the backend.
func (r Renderer) Audit(entries []entity.AuditEntry) string {
	if len(entries) == 0 {
		return r.muted("Журнал изменений пуст")
	}

	timeStyle := lipgloss.NewStyle().Width(21)
	userStyle := lipgloss.NewStyle().Width(18)
	roleStyle := lipgloss.NewStyle().Width(15)
	stateStyle := lipgloss.NewStyle().Width(15)
	pairStyle := lipgloss.NewStyle().Width(28)

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, r.header(
		timeStyle.Render("Дата")+userStyle.Render("Пользователь")+roleStyle.Render("Роль")+
			stateStyle.Render("Изменение")+pairStyle.Render("Право")+"Кем"))

	for _, e := range entries {
		var state string

		switch {
		case e.Operation == entity.AuditOperationClear:
			state = lipgloss.NewStyle().Foreground(r.theme.Muted).Render("Очищено")
		case e.Operation == entity.AuditOperationReset:
			state = lipgloss.NewStyle().Foreground(r.theme.Muted).Render("Сброшено")
		case e.Granted:
			state = lipgloss.NewStyle().Foreground(r.theme.Granted).Render("Предоставлено")
		default:
			state = lipgloss.NewStyle().Foreground(r.theme.Denied).Render("Отозвано")
		}

		by := e.GrantedByName
		if by == "" {
			by = "Система"
		}

		lines = append(lines,
			timeStyle.Render(e.GrantedAt.Local().Format(timeLayout))+
				userStyle.Render(e.Username)+
				roleStyle.Render(e.Role.DisplayName())+
				stateStyle.Render(state)+
				pairStyle.Render(fmt.Sprintf("%s/%s", e.Resource, e.Action))+
				by)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r Renderer) Report(rep editor.SaveReport) string {
	lines := []string{r.header(fmt.Sprintf("Сохранение прав пользователя #%d", rep.UserID))}

	for _, c := range rep.Saved {
		lines = append(lines, fmt.Sprintf("  %s %s/%s = %t",
			lipgloss.NewStyle().Foreground(r.theme.Granted).Render("сохранено"), c.Resource, c.Action, c.Granted))
	}

	for _, c := range rep.Cleared {
		lines = append(lines, fmt.Sprintf("  %s %s/%s",
			lipgloss.NewStyle().Foreground(r.theme.Base).Render("сброшено"), c.Resource, c.Action))
	}

	for _, f := range rep.Failed {
		lines = append(lines, fmt.Sprintf("  %s %s/%s: %s",
			lipgloss.NewStyle().Foreground(r.theme.Denied).Render("ошибка"), f.Entry.Resource, f.Entry.Action, f.Err))
	}

	if len(lines) == 1 {
		lines = append(lines, r.muted("  нет изменений"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
