// File: internal/model/faq.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type FaqQuestion struct {
	ID       string `db:"id" json:"id"`
	Question string `db:"question" json:"question"`
	Answer   string `db:"answer" json:"answer"`
	Category string `db:"category" json:"category"`
}

// SavedFaq 是使用者收藏的 FAQ，Question 與 Category 由查詢時 join 帶出
type SavedFaq struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"userId"`
	QuestionID string    `db:"question_id" json:"questionId"`
	Question   string    `db:"question" json:"question"`
	Category   string    `db:"category" json:"category"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
