package models

type QuizQuestion struct {
	ID         string       `json:"id" db:"id"`
	Question   string       `json:"question" db:"question"`
	OrderIndex int          `json:"order_index" db:"order_index"`
	Answers    []QuizAnswer `json:"answers"`
}

type QuizAnswer struct {
	ID          string   `json:"id" db:"id"`
	QuestionID  string   `json:"question_id" db:"question_id"`
	Text        string   `json:"text" db:"text"`
	ProductTags []string `json:"product_tags" db:"product_tags"`
}
