package english

import "careerhub/models"

// Movie is a video clip with a transcript for listening practice
type Movie struct {
	models.Base
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	YoutubeID    string `json:"youtubeId" gorm:"index"`
	Level        string `json:"level" gorm:"index"`
	Transcript   string `json:"transcript" gorm:"type:text"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsPublished  bool   `json:"isPublished" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
