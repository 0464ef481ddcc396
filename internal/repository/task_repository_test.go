package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
)

func TestTaskListByAssignees(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(&models.Task{
			AssigneeID: "A", Title: title, Date: "2025-06-01", Location: "London",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(&models.Task{
		AssigneeID: "B", Title: "other", Date: "2025-06-01", Location: "Paris",
		CreatedAt: base.Add(time.Hour),
	}))

	tasks, err := repo.ListByAssignees([]string{"A"})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "newest", tasks[0].Title, "ordered by creation time descending")
	assert.Equal(t, "oldest", tasks[2].Title)

	both, err := repo.ListByAssignees([]string{"A", "B"})
	require.NoError(t, err)
	assert.Len(t, both, 4)

	none, err := repo.ListByAssignees(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskUpdateStatusMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	assert.ErrorIs(t, repo.UpdateStatus("no-such-id", true), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateTitle("no-such-id", "title"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete("no-such-id"), gorm.ErrRecordNotFound)
}

// setupMockDB opens GORM over a sqlmock connection to assert the exact
// statements going over the wire.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestTaskUpdateStatusStatement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec(`UPDATE "tasks" SET`).
		WithArgs(true, sqlmock.AnyArg(), "task-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus("task-1", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileDeleteRemovesTasksFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	// Tasks must go before the profile inside one transaction so a
	// failure can never leave orphaned tasks.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "profiles"`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete("p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileDeleteRollsBackOnTaskFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs("p1").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	require.Error(t, repo.Delete("p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
