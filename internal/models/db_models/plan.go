package db_models

// Plan is a gym subscription tier.
type Plan struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:20;not null;uniqueIndex:plans_name_key"`
	Value       float64 `gorm:"not null"`
	Description *string `gorm:"size:200"`
}

func (Plan) TableName() string {
	return "plans"
}
