package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/models"
)

func sampleQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:         "q1",
			Question:   "How do you take your mornings?",
			OrderIndex: 1,
			Answers: []models.QuizAnswer{
				{ID: "a1", QuestionID: "q1", Text: "Slow and quiet", ProductTags: []string{"mild", "smooth"}},
				{ID: "a2", QuestionID: "q1", Text: "Full throttle", ProductTags: []string{"bold", "strong"}},
			},
		},
		{
			ID:         "q2",
			Question:   "Sweet tooth?",
			OrderIndex: 2,
			Answers: []models.QuizAnswer{
				{ID: "a3", QuestionID: "q2", Text: "Always", ProductTags: []string{"sweet"}},
				{ID: "a4", QuestionID: "q2", Text: "Never", ProductTags: []string{"bitter"}},
			},
		},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Morning Mild", Tags: []string{"mild", "smooth", "sweet"}},
		{ID: "p2", Name: "Double Shot", Tags: []string{"bold", "strong", "bitter"}},
		{ID: "p3", Name: "Plain House Blend", Tags: []string{"classic"}},
	}
}

func TestSortQuestionsOrdersByIndex(t *testing.T) {
	questions := []models.QuizQuestion{
		{ID: "b", OrderIndex: 2},
		{ID: "a", OrderIndex: 1},
		{ID: "c", OrderIndex: 3},
	}

	sorted := SortQuestions(questions)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
	// Input untouched
	assert.Equal(t, "b", questions[0].ID)
}

func TestSortQuestionsStableOnEqualIndex(t *testing.T) {
	questions := []models.QuizQuestion{
		{ID: "first", OrderIndex: 1},
		{ID: "second", OrderIndex: 1},
	}

	sorted := SortQuestions(questions)

	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestAdvanceAccumulatesTags(t *testing.T) {
	questions := sampleQuestions()

	state := Advance(Reset(), questions, questions[0].Answers[1], sampleProducts())

	assert.Equal(t, 1, state.Step)
	assert.Equal(t, []string{"bold", "strong"}, state.Tags)
	assert.False(t, state.Done())
}

func TestAdvanceLastQuestionRecommends(t *testing.T) {
	questions := sampleQuestions()
	products := sampleProducts()

	state := Advance(Reset(), questions, questions[0].Answers[1], products)
	state = Advance(state, questions, questions[1].Answers[1], products)

	require.True(t, state.Done())
	assert.Equal(t, "p2", state.Recommendation.ID)
}

func TestBackRemovesPreviousAnswerTags(t *testing.T) {
	questions := sampleQuestions()

	state := Advance(Reset(), questions, questions[0].Answers[0], sampleProducts())
	state = Back(state, questions)

	assert.Equal(t, 0, state.Step)
	assert.Empty(t, state.Tags)
}

func TestBackAtStartIsNoOp(t *testing.T) {
	state := Back(Reset(), sampleQuestions())
	assert.Equal(t, 0, state.Step)
	assert.Empty(t, state.Tags)
}

func TestScoreCaseInsensitive(t *testing.T) {
	assert.Equal(t, 2, Score([]string{"Bold", "STRONG"}, []string{"bold", "strong"}))
	assert.Equal(t, 0, Score([]string{"sweet"}, []string{"bitter"}))
}

func TestScoreCountsRepeatedAccumulatorTags(t *testing.T) {
	// The same tag accumulated twice scores twice
	assert.Equal(t, 2, Score([]string{"bold", "bold"}, []string{"bold"}))
}

func TestRecommendPicksHighestScorer(t *testing.T) {
	product := Recommend([]string{"bold", "strong"}, sampleProducts())

	require.NotNil(t, product)
	assert.Equal(t, "p2", product.ID)
}

func TestRecommendTieGoesToFirstInListOrder(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Tags: []string{"sweet"}},
		{ID: "p2", Tags: []string{"sweet"}},
	}

	product := Recommend([]string{"sweet"}, products)

	require.NotNil(t, product)
	assert.Equal(t, "p1", product.ID)
}

func TestRecommendAllZeroScoresPicksSomeProduct(t *testing.T) {
	products := sampleProducts()

	product := Recommend([]string{"nonexistent"}, products)

	require.NotNil(t, product)
	ids := map[string]bool{"p1": true, "p2": true, "p3": true}
	assert.True(t, ids[product.ID])
}

func TestRecommendEmptyTagsPicksSomeProduct(t *testing.T) {
	// No accumulated tags means every product scores zero, so the
	// fallback still returns a member of the catalog
	products := sampleProducts()

	product := Recommend(nil, products)

	require.NotNil(t, product)
	ids := map[string]bool{"p1": true, "p2": true, "p3": true}
	assert.True(t, ids[product.ID])
}

func TestRecommendEmptyCatalogReturnsNil(t *testing.T) {
	assert.Nil(t, Recommend([]string{"bold"}, nil))
}
