package editor

import (
	"github.com/Kinimary/belwest/internal/entity"
)

type Cell struct {
	Action  entity.Action
	Checked bool
	Tag     entity.CellTag
	Special bool
}

type Row struct {
	Resource entity.Resource
	Cells    []Cell
}

// Grid is the resource × action view of the selected user. It is not Visible
// when no user is selected.
type Grid struct {
	Visible bool
	UserID  int64
	Role    entity.Role
	Dirty   bool
	Rows    []Row
}

func buildGrid(m entity.Matrix, state entity.UserPermissionState) []Row {
	rows := make([]Row, 0, len(entity.Resources()))

	for _, r := range entity.Resources() {
		actions := entity.ActionsFor(r)
		row := Row{Resource: r, Cells: make([]Cell, 0, len(actions))}

		for _, a := range actions {
			row.Cells = append(row.Cells, Cell{
				Action:  a,
				Checked: entity.Effective(m, state.Role, state.Custom, r, a),
				Tag:     entity.Tag(m, state.Role, state.Custom, r, a),
				Special: entity.IsSpecial(r, a),
			})
		}

		rows = append(rows, row)
	}

	return rows
}

// Cell looks up one cell of the grid.
func (g Grid) Cell(r entity.Resource, a entity.Action) (Cell, bool) {
	for _, row := range g.Rows {
		if row.Resource != r {
			continue
		}

		for _, c := range row.Cells {
			if c.Action == a {
				return c, true
			}
		}
	}

	return Cell{}, false
}
