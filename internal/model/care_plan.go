// File: internal/model/care_plan.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CarePlan 屬於單一使用者；Conditions 與 Medications 保留輸入順序
type CarePlan struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Conditions  []string  `db:"conditions" json:"conditions"`
	Medications []string  `db:"medications" json:"medications"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
