package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/pkg/revalidate"
)

func newQuizService(quizRepo *stubQuizRepo, productRepo *stubProductRepo) (*QuizService, *revalidate.Registry) {
	pages := revalidate.NewRegistry()
	return NewQuizService(quizRepo, productRepo, pages, testLogger()), pages
}

func TestCreateQuestionRequiresSession(t *testing.T) {
	svc, _ := newQuizService(&stubQuizRepo{}, &stubProductRepo{})

	result := svc.CreateQuestion(nil, QuizQuestionForm{Question: "Roast?"})

	assert.Equal(t, ErrUnauthorized, result.Error)
}

func TestCreateQuestionStoresAnswersSkippingEmpty(t *testing.T) {
	var answers []string
	svc, pages := newQuizService(&stubQuizRepo{
		createAnswerFn: func(questionID, text string, productTags []string) (string, error) {
			answers = append(answers, text)
			return "a1", nil
		},
	}, &stubProductRepo{})

	result := svc.CreateQuestion(adminSession(), QuizQuestionForm{
		Question: "Roast?",
		Answers: []QuizAnswerForm{
			{Text: "Dark", ProductTags: []string{"bold"}},
			{Text: ""},
			{Text: "Light", ProductTags: []string{"bright"}},
		},
	})

	require.False(t, result.IsError())
	assert.Equal(t, "Question created", result.Success)
	assert.Equal(t, "question-id", result.ID)
	assert.Equal(t, []string{"Dark", "Light"}, answers)
	assert.Equal(t, uint64(1), pages.Generation("/admin/quiz"))
	assert.Zero(t, pages.Generation("/quiz"))
}

func TestDeleteQuestionSignalsAdminQuizOnly(t *testing.T) {
	svc, pages := newQuizService(&stubQuizRepo{}, &stubProductRepo{})

	result := svc.DeleteQuestion(adminSession(), "q1")

	require.False(t, result.IsError())
	assert.Equal(t, "Question deleted", result.Success)
	assert.Equal(t, uint64(1), pages.Generation("/admin/quiz"))
	assert.Zero(t, pages.Generation("/quiz"))
}

func TestCreateAnswerReturnsID(t *testing.T) {
	svc, pages := newQuizService(&stubQuizRepo{}, &stubProductRepo{})

	result := svc.CreateAnswer(adminSession(), "q1", QuizAnswerForm{Text: "Dark", ProductTags: []string{"bold"}})

	require.False(t, result.IsError())
	assert.Equal(t, "Answer created", result.Success)
	assert.Equal(t, "answer-id", result.ID)
	assert.Equal(t, uint64(1), pages.Generation("/admin/quiz"))
}

func TestDeleteAnswerSignalsAdminQuiz(t *testing.T) {
	svc, pages := newQuizService(&stubQuizRepo{}, &stubProductRepo{})

	result := svc.DeleteAnswer(adminSession(), "a1")

	require.False(t, result.IsError())
	assert.Equal(t, "Answer deleted", result.Success)
	assert.Equal(t, uint64(1), pages.Generation("/admin/quiz"))
}

func TestCreateAnswerRequiresText(t *testing.T) {
	svc, _ := newQuizService(&stubQuizRepo{}, &stubProductRepo{})

	result := svc.CreateAnswer(adminSession(), "q1", QuizAnswerForm{})

	assert.Equal(t, "Question ID and answer text are required.", result.Error)
}
