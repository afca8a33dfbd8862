package course

import "careerhub/models"

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course represents a programming course
type Course struct {
	models.Base
	Title        string `json:"title" gorm:"not null"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string `json:"description"`
	Language     string `json:"language" gorm:"index"` // go, python, typescript, ...
	Level        string `json:"level" gorm:"default:'BEGINNER'"`
	ThumbnailURL string `json:"thumbnailUrl"`
	OrderIndex   int    `json:"orderIndex" gorm:"default:0"`
	IsPublished  bool   `json:"isPublished" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
