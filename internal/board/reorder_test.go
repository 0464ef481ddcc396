package board

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
)

func task(id string, done bool) models.Task {
	return models.Task{ID: id, Title: "task " + id, IsDone: done}
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func allIDsSorted(pending, completed []models.Task) []string {
	all := append(ids(pending), ids(completed)...)
	sort.Strings(all)
	return all
}

func TestReorderWithinColumn(t *testing.T) {
	pending := []models.Task{task("a", false), task("b", false), task("c", false)}
	completed := []models.Task{task("x", true)}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 0,
		ToColumn: ColumnTodo, ToIndex: 2,
	})

	assert.Nil(t, changed, "within-column reorder needs no persistence")
	assert.Equal(t, []string{"b", "c", "a"}, ids(p))
	assert.Equal(t, []string{"x"}, ids(cm))

	// IsDone untouched on every item.
	for _, tk := range p {
		assert.False(t, tk.IsDone)
	}
}

func TestReorderAcrossColumnsFlipsDone(t *testing.T) {
	pending := []models.Task{task("a", false), task("b", false)}
	completed := []models.Task{task("x", true)}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 1,
		ToColumn: ColumnDone, ToIndex: 0,
	})

	require.NotNil(t, changed)
	assert.Equal(t, "b", changed.ID)
	assert.True(t, changed.IsDone)
	assert.Equal(t, []string{"a"}, ids(p))
	assert.Equal(t, []string{"b", "x"}, ids(cm))
	assert.True(t, cm[0].IsDone)

	// And back again.
	p2, cm2, changed2 := Reorder(p, cm, Move{
		FromColumn: ColumnDone, FromIndex: 0,
		ToColumn: ColumnTodo, ToIndex: 1,
	})
	require.NotNil(t, changed2)
	assert.False(t, changed2.IsDone)
	assert.Equal(t, []string{"a", "b"}, ids(p2))
	assert.Equal(t, []string{"x"}, ids(cm2))
}

func TestReorderSameSlotIsNoOp(t *testing.T) {
	pending := []models.Task{task("a", false), task("b", false)}
	completed := []models.Task{task("x", true)}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 1,
		ToColumn: ColumnTodo, ToIndex: 1,
	})

	assert.Nil(t, changed)
	assert.Equal(t, pending, p)
	assert.Equal(t, completed, cm)
}

func TestReorderCancelledGesture(t *testing.T) {
	pending := []models.Task{task("a", false)}
	completed := []models.Task{}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 0,
	})

	assert.Nil(t, changed)
	assert.Equal(t, pending, p)
	assert.Equal(t, completed, cm)
}

func TestReorderInvalidSourceIndex(t *testing.T) {
	pending := []models.Task{task("a", false)}
	completed := []models.Task{task("x", true)}

	for _, idx := range []int{-1, 1, 99} {
		p, cm, changed := Reorder(pending, completed, Move{
			FromColumn: ColumnTodo, FromIndex: idx,
			ToColumn: ColumnDone, ToIndex: 0,
		})
		assert.Nil(t, changed)
		assert.Equal(t, pending, p)
		assert.Equal(t, completed, cm)
	}
}

func TestReorderClampsDestinationIndex(t *testing.T) {
	pending := []models.Task{task("a", false)}
	completed := []models.Task{task("x", true), task("y", true)}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 0,
		ToColumn: ColumnDone, ToIndex: 99,
	})

	require.NotNil(t, changed)
	assert.Empty(t, p)
	assert.Equal(t, []string{"x", "y", "a"}, ids(cm))
}

func TestReorderIntoEmptyColumn(t *testing.T) {
	var pending []models.Task
	completed := []models.Task{task("x", true)}

	p, cm, changed := Reorder(pending, completed, Move{
		FromColumn: ColumnDone, FromIndex: 0,
		ToColumn: ColumnTodo, ToIndex: 0,
	})

	require.NotNil(t, changed)
	assert.False(t, changed.IsDone)
	assert.Equal(t, []string{"x"}, ids(p))
	assert.Empty(t, cm)
}

func TestReorderPreservesIDMultiset(t *testing.T) {
	pending := []models.Task{task("a", false), task("b", false), task("c", false)}
	completed := []models.Task{task("x", true), task("y", true)}
	before := allIDsSorted(pending, completed)

	moves := []Move{
		{FromColumn: ColumnTodo, FromIndex: 0, ToColumn: ColumnTodo, ToIndex: 2},
		{FromColumn: ColumnTodo, FromIndex: 2, ToColumn: ColumnDone, ToIndex: 0},
		{FromColumn: ColumnDone, FromIndex: 1, ToColumn: ColumnTodo, ToIndex: 1},
		{FromColumn: ColumnDone, FromIndex: 0, ToColumn: ColumnDone, ToIndex: 1},
		{FromColumn: ColumnTodo, FromIndex: 0, ToColumn: ColumnDone, ToIndex: 99},
	}

	for _, mv := range moves {
		pending, completed, _ = Reorder(pending, completed, mv)
		assert.Equal(t, before, allIDsSorted(pending, completed),
			"no task created or lost by %+v", mv)
	}
}

func TestReorderDoesNotMutateInputs(t *testing.T) {
	pending := []models.Task{task("a", false), task("b", false)}
	completed := []models.Task{task("x", true)}

	_, _, _ = Reorder(pending, completed, Move{
		FromColumn: ColumnTodo, FromIndex: 0,
		ToColumn: ColumnDone, ToIndex: 1,
	})

	assert.Equal(t, []string{"a", "b"}, ids(pending))
	assert.Equal(t, []string{"x"}, ids(completed))
	assert.False(t, pending[0].IsDone)
}
