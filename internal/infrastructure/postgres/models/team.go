package models

import "github.com/shopspring/decimal"

type TeamModel struct {
	ID      int64           `gorm:"primaryKey;autoIncrement"`
	Name    string          `gorm:"not null"`
	Acronym string          `gorm:"not null;uniqueIndex:idx_team_acronym"`
	Budget  decimal.Decimal `gorm:"type:numeric(19,2);not null;check:budget > 0"`
	Players []PlayerModel   `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (TeamModel) TableName() string {
	return "team"
}
