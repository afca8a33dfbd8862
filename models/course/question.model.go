package course

import (
	"careerhub/models"

	"gorm.io/datatypes"
)

const (
	QuestionChoice = "CHOICE"
	QuestionText   = "TEXT"
)

// Question is a chapter exercise, either multiple choice or free text
type Question struct {
	models.Base
	ChapterID    string                      `json:"chapterId" gorm:"type:varchar(36);index;not null"`
	Type         string                      `json:"type" gorm:"default:'CHOICE'"`
	Prompt       string                      `json:"prompt" gorm:"type:text;not null"`
	Options      datatypes.JSONSlice[string] `json:"options"`
	CorrectIndex int                         `json:"correctIndex" gorm:"default:0"`
	Answer       string                      `json:"answer"` // expected text for TEXT questions
	Explanation  string                      `json:"explanation" gorm:"type:text"`
	OrderIndex   int                         `json:"orderIndex" gorm:"default:0"`
	IsDeleted    bool                        `json:"-" gorm:"default:false"`
}

// PublicQuestion is what learners see before answering
type PublicQuestion struct {
	ID         string   `json:"id"`
	ChapterID  string   `json:"chapterId"`
	Type       string   `json:"type"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
	OrderIndex int      `json:"orderIndex"`
}

func (q Question) Public() PublicQuestion {
	options := []string(q.Options)
	if options == nil {
		options = []string{}
	}
	return PublicQuestion{
		ID:         q.ID,
		ChapterID:  q.ChapterID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Options:    options,
		OrderIndex: q.OrderIndex,
	}
}
