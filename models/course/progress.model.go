package course

import (
	"time"

	"careerhub/models"
)

const (
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
)

// ChapterProgress tracks a user's completion of a chapter
type ChapterProgress struct {
	models.Base
	UserID      string     `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_progress_user_chapter;not null"`
	CourseID    string     `json:"courseId" gorm:"type:varchar(36);index;not null"`
	ChapterID   string     `json:"chapterId" gorm:"type:varchar(36);uniqueIndex:idx_progress_user_chapter;not null"`
	Status      string     `json:"status" gorm:"default:'IN_PROGRESS'"`
	CompletedAt *time.Time `json:"completedAt"`
}
