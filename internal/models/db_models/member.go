package db_models

// Member is a gym patron enrolled in exactly one Plan.
type Member struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:20;not null"`
	LastName  string `gorm:"size:20;not null"`
	Email     string `gorm:"size:50;not null;uniqueIndex:members_email_key"`
	PlanID    uint   `gorm:"not null;index"`
}

func (Member) TableName() string {
	return "members"
}
