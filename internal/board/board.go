package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JGSSSILVA/Personal-Kanban/internal/models"
	"github.com/JGSSSILVA/Personal-Kanban/internal/repository"
)

var (
	ErrMissingFields = errors.New("title, date, location and assignee are all required")
	ErrAddInFlight   = errors.New("a task submission is already in progress")
)

// WeatherResolver produces a one-line weather summary for a location and
// an ISO date. Implementations never fail; failures are marker strings.
type WeatherResolver interface {
	Resolve(ctx context.Context, location, date string) string
}

// MoveState tracks a cross-column move through its persistence lifecycle.
type MoveState string

const (
	MoveApplied   MoveState = "applied"
	MoveConfirmed MoveState = "confirmed"
	MoveFailed    MoveState = "failed"
)

// MoveRecord is one journal entry for a cross-column move.
type MoveRecord struct {
	TaskID string
	Move   Move
	State  MoveState
	At     time.Time
}

const journalLimit = 64

// Board is the in-memory mirror of the two task columns for one client's
// profile selection. All mutation goes through its methods; each method
// settles the in-memory slices atomically before the next one runs.
type Board struct {
	mu        sync.Mutex
	tasks     repository.TaskRepository
	weather   WeatherResolver
	selection *Selection

	pending   []models.Task
	completed []models.Task
	journal   []MoveRecord
	adding    bool
}

// New creates an empty Board wired to its collaborators.
func New(tasks repository.TaskRepository, weather WeatherResolver) *Board {
	return &Board{
		tasks:     tasks,
		weather:   weather,
		selection: NewSelection(),
	}
}

// Snapshot is a point-in-time copy of the board for rendering.
type Snapshot struct {
	Pending    []models.Task
	Completed  []models.Task
	Active     []models.Profile
	AssigneeID string
}

// Snapshot returns copies of both columns and the current selection.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() Snapshot {
	pending := make([]models.Task, len(b.pending))
	copy(pending, b.pending)
	completed := make([]models.Task, len(b.completed))
	copy(completed, b.completed)

	return Snapshot{
		Pending:    pending,
		Completed:  completed,
		Active:     b.selection.Active(),
		AssigneeID: b.selection.AssigneeID(),
	}
}

// ToggleProfile flips a profile in or out of the active set and reloads
// both columns from the store. An emptied selection clears the board so
// no stale tasks from another profile stay visible.
func (b *Board) ToggleProfile(ctx context.Context, profile models.Profile) (Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selection.Toggle(profile)
	if err := b.loadLocked(); err != nil {
		return Snapshot{}, err
	}
	return b.snapshotLocked(), nil
}

// DropProfile removes a deleted profile from the selection and reloads.
func (b *Board) DropProfile(ctx context.Context, profileID string) (Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selection.Drop(profileID)
	if err := b.loadLocked(); err != nil {
		return Snapshot{}, err
	}
	return b.snapshotLocked(), nil
}

// Load replaces both columns with the store's view of the current
// selection, partitioned by done state, newest first.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loadLocked()
}

func (b *Board) loadLocked() error {
	if b.selection.Empty() {
		b.pending = nil
		b.completed = nil
		return nil
	}

	tasks, err := b.tasks.ListByAssignees(b.selection.ActiveIDs())
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	pending := make([]models.Task, 0, len(tasks))
	completed := make([]models.Task, 0)
	for _, t := range tasks {
		if t.IsDone {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	b.pending = pending
	b.completed = completed
	return nil
}

// AddTaskInput carries the user-entered fields of a new task.
type AddTaskInput struct {
	Title    string
	Date     string
	Location string
}

// Add creates a task under the current assignee. The weather summary is
// resolved once, before the insert, and is immutable afterwards. Creation
// is not optimistic: nothing appears on the board until the store has
// accepted the record. Only one Add runs at a time; the board stays
// readable (and draggable) while the weather fetch is in flight.
func (b *Board) Add(ctx context.Context, input AddTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)

	b.mu.Lock()
	assigneeID := b.selection.AssigneeID()
	if title == "" || input.Date == "" || location == "" || assigneeID == "" {
		b.mu.Unlock()
		return nil, ErrMissingFields
	}
	if b.adding {
		b.mu.Unlock()
		return nil, ErrAddInFlight
	}
	b.adding = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.adding = false
		b.mu.Unlock()
	}()

	// Network-bound; runs outside the lock.
	summary := b.weather.Resolve(ctx, location, input.Date)

	task := &models.Task{
		AssigneeID:     assigneeID,
		Title:          title,
		Date:           input.Date,
		Location:       location,
		WeatherSummary: summary,
	}
	if err := b.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// The selection may have moved on while the lookup was in flight; a
	// late result for a no-longer-active profile is discarded.
	if b.selection.Contains(task.AssigneeID) {
		b.pending = append([]models.Task{*task}, b.pending...)
	}
	return task, nil
}

// ApplyMove runs the reorder engine over both columns and applies the
// result optimistically. A cross-column move persists the flipped done
// flag; if the store rejects it the optimistic move is reverted and the
// failure is logged, never surfaced.
func (b *Board) ApplyMove(ctx context.Context, mv Move) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending, completed, changed := Reorder(b.pending, b.completed, mv)
	b.pending = pending
	b.completed = completed
	if changed == nil {
		return b.snapshotLocked()
	}

	rec := MoveRecord{TaskID: changed.ID, Move: mv, State: MoveApplied, At: time.Now()}
	if err := b.tasks.UpdateStatus(changed.ID, changed.IsDone); err != nil {
		rec.State = MoveFailed
		b.revertMoveLocked(*changed, mv)
		logrus.WithError(err).WithFields(logrus.Fields{
			"task_id": changed.ID,
			"is_done": changed.IsDone,
		}).Error("move persistence failed, reverted")
	} else {
		rec.State = MoveConfirmed
	}
	b.recordLocked(rec)

	return b.snapshotLocked()
}

// revertMoveLocked undoes a failed cross-column move: the task leaves the
// destination column and returns to its source slot with the done flag
// restored.
func (b *Board) revertMoveLocked(task models.Task, mv Move) {
	inverse := Move{
		FromColumn: mv.ToColumn,
		ToColumn:   mv.FromColumn,
		ToIndex:    mv.FromIndex,
	}

	dst := columnTasks(b.pending, b.completed, mv.ToColumn)
	inverse.FromIndex = -1
	for i, t := range dst {
		if t.ID == task.ID {
			inverse.FromIndex = i
			break
		}
	}
	if inverse.FromIndex == -1 {
		// Gone from the destination column (e.g. deleted meanwhile);
		// nothing left to revert.
		return
	}

	b.pending, b.completed, _ = Reorder(b.pending, b.completed, inverse)
}

func (b *Board) recordLocked(rec MoveRecord) {
	b.journal = append(b.journal, rec)
	if len(b.journal) > journalLimit {
		b.journal = b.journal[len(b.journal)-journalLimit:]
	}
}

// Journal returns a copy of the recent cross-column move records.
func (b *Board) Journal() []MoveRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]MoveRecord, len(b.journal))
	copy(out, b.journal)
	return out
}

// Remove deletes a task. The item leaves the board only after the store
// confirms the delete; on failure it stays in place and the error
// surfaces to the caller.
func (b *Board) Remove(ctx context.Context, id string, isDone bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.tasks.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	list := &b.pending
	if isDone {
		list = &b.completed
	}
	for i, t := range *list {
		if t.ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			break
		}
	}
	return nil
}

// EditTitle renames a task in both the store and the matching in-memory
// item. A blank title is refused silently.
func (b *Board) EditTitle(ctx context.Context, id string, isDone bool, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.tasks.UpdateTitle(id, title); err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}

	list := b.pending
	if isDone {
		list = b.completed
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Title = title
			break
		}
	}
	return nil
}
