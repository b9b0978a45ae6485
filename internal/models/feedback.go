package models

import "time"

// Feedback is write-only from the application's point of view.
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FeedbackText string    `json:"feedbackText" gorm:"column:feedback_text;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name
func (Feedback) TableName() string {
	return "customer_feedback"
}
