package certification

import (
	"careerhub/models"

	"gorm.io/datatypes"
)

// Certification is a vendor exam learners can practise for
type Certification struct {
	models.Base
	Name         string `json:"name" gorm:"not null"`
	Code         string `json:"code" gorm:"uniqueIndex;not null"` // e.g. AZ-900, SAA-C03
	Vendor       string `json:"vendor" gorm:"index"`
	Description  string `json:"description" gorm:"type:text"`
	Level        string `json:"level"`
	PassingScore int    `json:"passingScore" gorm:"default:70"` // percent
	IsPublished  bool   `json:"isPublished" gorm:"default:false"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// Question is a practice question belonging to a certification
type Question struct {
	models.Base
	CertificationID string                      `json:"certificationId" gorm:"type:varchar(36);index;not null"`
	Category        string                      `json:"category" gorm:"index"`
	Prompt          string                      `json:"prompt" gorm:"type:text;not null"`
	Options         datatypes.JSONSlice[string] `json:"options"`
	CorrectIndex    int                         `json:"correctIndex"`
	Explanation     string                      `json:"explanation" gorm:"type:text"`
	IsDeleted       bool                        `json:"-" gorm:"default:false"`
}

// TableName keeps the question table distinct from programming questions
func (Question) TableName() string {
	return "certification_questions"
}

// PublicQuestion hides the answer key
type PublicQuestion struct {
	ID              string   `json:"id"`
	CertificationID string   `json:"certificationId"`
	Category        string   `json:"category"`
	Prompt          string   `json:"prompt"`
	Options         []string `json:"options"`
}

func (q Question) Public() PublicQuestion {
	options := []string(q.Options)
	if options == nil {
		options = []string{}
	}
	return PublicQuestion{
		ID:              q.ID,
		CertificationID: q.CertificationID,
		Category:        q.Category,
		Prompt:          q.Prompt,
		Options:         options,
	}
}

// Answer records one attempt at a certification question
type Answer struct {
	models.Base
	UserID          string `json:"userId" gorm:"type:varchar(36);index;not null"`
	CertificationID string `json:"certificationId" gorm:"type:varchar(36);index;not null"`
	QuestionID      string `json:"questionId" gorm:"type:varchar(36);index;not null"`
	SelectedIndex   int    `json:"selectedIndex"`
	IsCorrect       bool   `json:"isCorrect"`
}

func (Answer) TableName() string {
	return "certification_answers"
}
