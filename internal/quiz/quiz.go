// Package quiz implements the tag-matching recommendation quiz as a
// pure state machine: state is passed by value through transition
// functions, and the scorer is a function of (accumulated tags,
// candidate products) only.
package quiz

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/FDead21/afc-web/models"
)

// State is one visitor's progress through the quiz. The zero value is
// the start state.
type State struct {
	Step           int             `json:"step"`
	Tags           []string        `json:"tags"`
	Recommendation *models.Product `json:"recommendation,omitempty"`
}

// Done reports whether the quiz reached its terminal state.
func (s State) Done() bool {
	return s.Recommendation != nil
}

// SortQuestions returns the questions ordered by order_index ascending.
// The sort is stable so equal indexes keep their stored order.
func SortQuestions(questions []models.QuizQuestion) []models.QuizQuestion {
	sorted := append([]models.QuizQuestion(nil), questions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}

// Advance appends the chosen answer's tags to the accumulator and moves
// to the next question, or computes the recommendation when the last
// question was answered.
func Advance(state State, questions []models.QuizQuestion, answer models.QuizAnswer, products []models.Product) State {
	next := State{
		Step: state.Step,
		Tags: append(append([]string(nil), state.Tags...), answer.ProductTags...),
	}

	if state.Step < len(questions)-1 {
		next.Step = state.Step + 1
		return next
	}

	next.Recommendation = Recommend(next.Tags, products)
	return next
}

// Back undoes the most recent answer by one step. The answer to undo is
// matched heuristically: the first answer of the previous question
// whose tag set overlaps the accumulator. When answers share tags the
// heuristic can pick the wrong one; callers accept that fragility.
func Back(state State, questions []models.QuizQuestion) State {
	if state.Step == 0 {
		return state
	}

	next := State{
		Step: state.Step - 1,
		Tags: append([]string(nil), state.Tags...),
	}

	for _, answer := range questions[state.Step-1].Answers {
		if overlaps(state.Tags, answer.ProductTags) {
			cut := len(state.Tags) - len(answer.ProductTags)
			if cut < 0 {
				cut = 0
			}
			next.Tags = append([]string(nil), state.Tags[:cut]...)
			break
		}
	}

	return next
}

// Reset returns the start state.
func Reset() State {
	return State{}
}

// Recommend scores every product by the number of accumulated tags that
// case-insensitively match one of the product's own tags and returns
// the highest scorer. Ties go to the first product in list order. When
// every product scores zero the pick is uniformly random; nil when
// there are no candidates at all.
func Recommend(tags []string, products []models.Product) *models.Product {
	if len(products) == 0 {
		return nil
	}

	type scored struct {
		product *models.Product
		score   int
	}

	scores := make([]scored, 0, len(products))
	for i := range products {
		scores = append(scores, scored{
			product: &products[i],
			score:   Score(tags, products[i].Tags),
		})
	}

	// Stable sort keeps list order among equal scores, so the first
	// maximum encountered wins ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if scores[0].score > 0 {
		return scores[0].product
	}

	return &products[rand.IntN(len(products))]
}

// Score counts how many accumulated tags match any of the product's
// tags, comparing case-insensitively. Repeated accumulator tags count
// once each, mirroring answer-selection order accumulation.
func Score(tags, productTags []string) int {
	matches := 0
	for _, tag := range tags {
		for _, productTag := range productTags {
			if strings.EqualFold(tag, productTag) {
				matches++
				break
			}
		}
	}
	return matches
}

func overlaps(tags, answerTags []string) bool {
	for _, tag := range tags {
		for _, answerTag := range answerTags {
			if answerTag == tag {
				return true
			}
		}
	}
	return false
}
