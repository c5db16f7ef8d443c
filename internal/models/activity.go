package models

import "time"

// ActivityEntry accumulates learned minutes for one learner on one calendar
// date (ISO form, learner-local). Rows are increment-only.
type ActivityEntry struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	LearnerKey string    `gorm:"size:255;uniqueIndex:idx_activity_key_date;not null" json:"learner_key"`
	Date       string    `gorm:"size:10;uniqueIndex:idx_activity_key_date;not null" json:"date"`
	Minutes    float64   `gorm:"not null;default:0" json:"minutes"`
	UpdatedAt  time.Time `json:"updated_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// DayActivity is one entry in a gap-free activity window.
type DayActivity struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}
