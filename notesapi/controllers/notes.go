// notesapi/controllers/notes.go
package controllers

import (
	"context"
	"time"

	"notesapi/notesapi/sources/psql/models"
	"notesapi/notesapi/utils/logging"
)

// NoteStore is the persistence boundary for notes. NoteDAO is the
// production implementation.
type NoteStore interface {
	ListAll(ctx context.Context) ([]models.Note, error)
	GetByID(ctx context.Context, id int) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Save(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, note *models.Note) error
	CountByCreatedDate(ctx context.Context, from, to time.Time) ([]models.NoteCountByDate, error)
	CountByUpdatedDate(ctx context.Context, from, to time.Time) ([]models.NoteCountByDate, error)
}

type CreatedDateGroup struct {
	CreatedAt string `json:"createdAt"`
	NoteCount int    `json:"noteCount"`
}

type UpdatedDateGroup struct {
	UpdatedAt string `json:"updatedAt"`
	NoteCount int    `json:"noteCount"`
}

type NotesController struct {
	store NoteStore
}

func NewNotesController(store NoteStore) *NotesController {
	return &NotesController{store: store}
}

func (c *NotesController) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// GetNote returns nil without error when no note has the given id.
func (c *NotesController) GetNote(ctx context.Context, id int) (*models.Note, error) {
	return c.store.GetByID(ctx, id)
}

// CreateNote stamps both timestamps with the same local-clock reading,
// so a freshly created note always has CreatedAt == UpdatedAt. Any
// client-supplied id or timestamps are ignored by the handler layer.
func (c *NotesController) CreateNote(ctx context.Context, title, body string) (*models.Note, error) {
	now := time.Now()
	note := &models.Note{
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.store.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces title and body and refreshes UpdatedAt; id and
// CreatedAt are never touched. Returns nil without error when the id
// does not exist.
func (c *NotesController) UpdateNote(ctx context.Context, id int, title, body string) (*models.Note, error) {
	note, err := c.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	note.Title = title
	note.Body = body
	note.UpdatedAt = time.Now()
	if err := c.store.Save(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote reports whether a note with the given id existed and was
// removed.
func (c *NotesController) DeleteNote(ctx context.Context, id int) (bool, error) {
	note, err := c.store.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if note == nil {
		return false, nil
	}
	if err := c.store.Delete(ctx, note); err != nil {
		return false, err
	}
	return true, nil
}

// GroupByCreatedDate counts notes per calendar date of creation within
// [from, to + 1 day]. The extra day makes a date-only toDate cover the
// whole of that day. An empty range yields an empty slice, never an
// error.
func (c *NotesController) GroupByCreatedDate(ctx context.Context, from, to time.Time) ([]CreatedDateGroup, error) {
	defer logging.LogDuration(ctx, "GroupByCreatedDate")()
	rows, err := c.store.CountByCreatedDate(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	groups := make([]CreatedDateGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, CreatedDateGroup{
			CreatedAt: row.Date.Format("2006-01-02"),
			NoteCount: row.NoteCount,
		})
	}
	return groups, nil
}

// GroupByUpdatedDate is the updated_at counterpart; the store query
// additionally excludes notes that were never modified after creation.
func (c *NotesController) GroupByUpdatedDate(ctx context.Context, from, to time.Time) ([]UpdatedDateGroup, error) {
	defer logging.LogDuration(ctx, "GroupByUpdatedDate")()
	rows, err := c.store.CountByUpdatedDate(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	groups := make([]UpdatedDateGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, UpdatedDateGroup{
			UpdatedAt: row.Date.Format("2006-01-02"),
			NoteCount: row.NoteCount,
		})
	}
	return groups, nil
}
