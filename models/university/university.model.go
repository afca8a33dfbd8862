package university

import (
	"careerhub/models"

	"github.com/shopspring/decimal"
)

// University is a listing shown on the study-abroad pages
type University struct {
	models.Base
	Name        string          `json:"name" gorm:"not null;index"`
	Country     string          `json:"country" gorm:"index"`
	City        string          `json:"city"`
	Website     string          `json:"website"`
	Ranking     int             `json:"ranking" gorm:"default:0"`
	TuitionFee  decimal.Decimal `json:"tuitionFee" gorm:"type:numeric(12,2)"`
	Currency    string          `json:"currency" gorm:"default:'USD'"`
	Description string          `json:"description" gorm:"type:text"`
	LogoURL     string          `json:"logoUrl"`
	IsPublished bool            `json:"isPublished" gorm:"default:false"`
	IsDeleted   bool            `json:"-" gorm:"default:false"`
}
