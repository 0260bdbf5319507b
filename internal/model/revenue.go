package model

// Revenue is a static reporting row: revenue booked for one month label.
type Revenue struct {
	Month   string `json:"month" gorm:"primaryKey;size:4"`
	Revenue int64  `json:"revenue" gorm:"not null"`
}

// TableName keeps the singular table name used by the reporting queries.
func (Revenue) TableName() string { return "revenue" }
