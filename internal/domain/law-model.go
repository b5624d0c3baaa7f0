package domain

// Law is a catalog record describing a national or regional AI-regulation act.
type Law struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Country  string `gorm:"type:varchar(100);not null" json:"country"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Summary  string `gorm:"type:text" json:"summary"`
	FullText string `gorm:"type:text" json:"full_text"`
}
