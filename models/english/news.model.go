package english

import (
	"time"

	"careerhub/models"
)

// News is an article used as English reading material
type News struct {
	models.Base
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Content     string     `json:"content" gorm:"type:text"`
	URL         string     `json:"url" gorm:"uniqueIndex;not null"`
	ImageURL    string     `json:"imageUrl"`
	Source      string     `json:"source"`
	Author      string     `json:"author"`
	Level       string     `json:"level" gorm:"index"` // BEGINNER, INTERMEDIATE, ADVANCED
	AudioURL    string     `json:"audioUrl"`
	PublishedAt *time.Time `json:"publishedAt" gorm:"index"`
	IsPublished bool       `json:"isPublished" gorm:"default:false"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}
