package store

import (
	"context"
	"fmt"
	"strings"

	"care-companion/internal/database"
	"care-companion/internal/model"

	"github.com/google/uuid"
)

type FaqStore struct {
	db database.DB
}

func NewFaqStore(db database.DB) *FaqStore {
	return &FaqStore{db: db}
}

func (s *FaqStore) ListSavedByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.SavedFaq, error) {
	rows, err := s.db.Query(ctx,
		`SELECT s.id, s.user_id, s.question_id, q.question, q.category, s.created_at
		 FROM saved_faqs s
		 JOIN faq_questions q ON q.id = s.question_id
		 WHERE s.user_id = $1
		 ORDER BY s.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSavedFaqsByOwner: %w", err)
	}
	defer rows.Close()

	saved := make([]model.SavedFaq, 0)
	for rows.Next() {
		var f model.SavedFaq
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.QuestionID,
			&f.Question,
			&f.Category,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListSavedFaqsByOwner: %w", err)
		}
		saved = append(saved, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSavedFaqsByOwner: %w", err)
	}
	return saved, nil
}

// likeEscaper 讓使用者輸入的 % _ \ 以字面比對
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListQuestions 空字串的 category / search 代表不篩選
func (s *FaqStore) ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, question, answer, category
		 FROM faq_questions
		 WHERE ($1::text = '' OR category = $1)
		   AND ($2::text = '' OR question ILIKE '%' || $2 || '%' ESCAPE '\' OR answer ILIKE '%' || $2 || '%' ESCAPE '\')
		 ORDER BY id`,
		category,
		likeEscaper.Replace(search),
	)
	if err != nil {
		return nil, fmt.Errorf("ListFaqQuestions: %w", err)
	}
	defer rows.Close()

	questions := make([]model.FaqQuestion, 0)
	for rows.Next() {
		var q model.FaqQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category); err != nil {
			return nil, fmt.Errorf("ListFaqQuestions: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFaqQuestions: %w", err)
	}
	return questions, nil
}
