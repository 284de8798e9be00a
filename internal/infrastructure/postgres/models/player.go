package models

type PlayerModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"not null"`
	Position string `gorm:"not null"`
	TeamID   *int64 `gorm:"index"`
}

func (PlayerModel) TableName() string {
	return "player"
}
