// notesapi/sources/psql/models/note.go
package models

import (
	"time"
)

// Note is the single persisted entity: a titled text body with
// creation/update timestamps. Timestamps are assigned by the service
// layer, so GORM's automatic time tracking is switched off.
type Note struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteCountByDate is the scan target for the grouped date-count
// queries: one row per calendar date that has at least one match.
type NoteCountByDate struct {
	Date      time.Time `gorm:"column:date"`
	NoteCount int       `gorm:"column:note_count"`
}
