package api

// QuestionQuery FAQ 列表的查詢參數
type QuestionQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=diagnosis treatments side-effects wellbeing"`
	Search   string `query:"search" validate:"max=100"`
}
