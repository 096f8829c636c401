package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedAnalyzer struct {
	polarity float64
	calls    int
}

func (f *fixedAnalyzer) Polarity(string) float64 {
	f.calls++
	return f.polarity
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		polarity float64
		expected Label
	}{
		{0.0, Neutral},
		{0.35, Positive},
		{-0.1, Negative},
		{1, Positive},
		{-1, Negative},
		{1e-9, Positive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LabelFor(tt.polarity), "polarity=%v", tt.polarity)
	}
}

func TestScorer_UsesAnalyzerPolarity(t *testing.T) {
	for _, tt := range []struct {
		polarity float64
		expected Label
	}{
		{0.0, Neutral},
		{0.35, Positive},
		{-0.1, Negative},
	} {
		a := &fixedAnalyzer{polarity: tt.polarity}
		assert.Equal(t, tt.expected, NewScorer(a).Score("any text"))
		assert.Equal(t, 1, a.calls)
	}
}

func TestScorer_EmptyTextIsNeutral(t *testing.T) {
	a := &fixedAnalyzer{polarity: 0.9}
	s := NewScorer(a)

	assert.Equal(t, Neutral, s.Score(""))
	assert.Equal(t, Neutral, s.Score("  \n"))
	assert.Equal(t, 0, a.calls)
}

func TestScorer_Vader(t *testing.T) {
	s := NewScorer(nil)

	assert.Equal(t, Positive, s.Score("This is a great, wonderful and excellent question."))
	assert.Equal(t, Negative, s.Score("This is a terrible, awful and horrible answer."))
	assert.Equal(t, Neutral, s.Score(""))
}

func TestLabel_Display(t *testing.T) {
	assert.Equal(t, "😊 Positive", Positive.Display())
	assert.Equal(t, "😟 Negative", Negative.Display())
	assert.Equal(t, "😐 Neutral", Neutral.Display())
	assert.Equal(t, "", Label("").Display())
}
