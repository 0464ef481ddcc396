package board

import "github.com/JGSSSILVA/Personal-Kanban/internal/models"

// Column identifies one of the two board partitions.
type Column string

const (
	ColumnTodo Column = "TODO"
	ColumnDone Column = "DONE"
)

// Move describes a completed drag gesture. An empty ToColumn means the
// gesture was cancelled (dropped outside any valid target).
type Move struct {
	FromColumn Column `json:"from_column"`
	FromIndex  int    `json:"from_index"`
	ToColumn   Column `json:"to_column"`
	ToIndex    int    `json:"to_index"`
}

// cancelled reports whether the gesture had no valid destination or would
// land back in its own slot.
func (m Move) cancelled() bool {
	if m.ToColumn == "" {
		return true
	}
	return m.FromColumn == m.ToColumn && m.FromIndex == m.ToIndex
}

// Reorder computes the new column pair resulting from a drag gesture. The
// input slices are never mutated. When the move crosses columns the moved
// task's IsDone flag is flipped to match the destination and the post-move
// task is returned for the caller to persist; within-column reorders
// return nil (position is a view-level concern, nothing to persist).
//
// Every task id present in the inputs is present exactly once in the
// outputs. A cancelled gesture or an out-of-range source index returns
// the inputs unchanged.
func Reorder(pending, completed []models.Task, mv Move) (newPending, newCompleted []models.Task, changed *models.Task) {
	if mv.cancelled() {
		return pending, completed, nil
	}

	if !validColumn(mv.FromColumn) || !validColumn(mv.ToColumn) {
		return pending, completed, nil
	}

	src := columnTasks(pending, completed, mv.FromColumn)
	if mv.FromIndex < 0 || mv.FromIndex >= len(src) {
		return pending, completed, nil
	}

	moved := src[mv.FromIndex]
	newSrc := make([]models.Task, 0, len(src)-1)
	newSrc = append(newSrc, src[:mv.FromIndex]...)
	newSrc = append(newSrc, src[mv.FromIndex+1:]...)

	dst := newSrc
	sameColumn := mv.FromColumn == mv.ToColumn
	if !sameColumn {
		dst = columnTasks(pending, completed, mv.ToColumn)
		moved.IsDone = mv.ToColumn == ColumnDone
	}

	// The destination index may equal the destination length (append).
	idx := mv.ToIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(dst) {
		idx = len(dst)
	}

	newDst := make([]models.Task, 0, len(dst)+1)
	newDst = append(newDst, dst[:idx]...)
	newDst = append(newDst, moved)
	newDst = append(newDst, dst[idx:]...)

	if sameColumn {
		if mv.FromColumn == ColumnTodo {
			return newDst, completed, nil
		}
		return pending, newDst, nil
	}

	if mv.FromColumn == ColumnTodo {
		return newSrc, newDst, &moved
	}
	return newDst, newSrc, &moved
}

func validColumn(col Column) bool {
	return col == ColumnTodo || col == ColumnDone
}

func columnTasks(pending, completed []models.Task, col Column) []models.Task {
	if col == ColumnTodo {
		return pending
	}
	return completed
}
