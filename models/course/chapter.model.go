package course

import "careerhub/models"

// Chapter is an ordered lesson inside a course
type Chapter struct {
	models.Base
	CourseID    string `json:"courseId" gorm:"type:varchar(36);index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Content     string `json:"content" gorm:"type:text"`
	SourceDocID string `json:"sourceDocId"` // Google Doc the content was imported from
	OrderIndex  int    `json:"orderIndex" gorm:"default:0"`
	IsPublished bool   `json:"isPublished" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
