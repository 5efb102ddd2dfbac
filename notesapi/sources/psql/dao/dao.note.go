// notesapi/sources/psql/dao/dao.note.go
package dao

import (
	"context"
	"errors"
	"time"

	"notesapi/notesapi/sources/psql/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) ListAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := dao.DB.WithContext(ctx).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (dao *NoteDAO) GetByID(ctx context.Context, id int) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (dao *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

func (dao *NoteDAO) Save(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Save(note).Error
}

func (dao *NoteDAO) Delete(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Delete(note).Error
}

// CountByCreatedDate counts notes per calendar date of created_at
// within [from, to]. Dates with no notes yield no row.
func (dao *NoteDAO) CountByCreatedDate(ctx context.Context, from, to time.Time) ([]models.NoteCountByDate, error) {
	var rows []models.NoteCountByDate
	err := dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Select("DATE(created_at) AS date, COUNT(*) AS note_count").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("DATE(created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByUpdatedDate counts notes per calendar date of updated_at
// within [from, to], restricted to notes that have been modified
// since creation (created_at < updated_at).
func (dao *NoteDAO) CountByUpdatedDate(ctx context.Context, from, to time.Time) ([]models.NoteCountByDate, error) {
	var rows []models.NoteCountByDate
	err := dao.DB.WithContext(ctx).
		Model(&models.Note{}).
		Select("DATE(updated_at) AS date, COUNT(*) AS note_count").
		Where("updated_at >= ? AND updated_at <= ? AND created_at < updated_at", from, to).
		Group("DATE(updated_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
