package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScoreAndFeedback(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantScore    string
		wantFeedback string
		wantErr      bool
	}{
		{
			name:         "well formed response",
			raw:          "Score: 7\nFeedback: Good structure and mostly correct grammar.",
			wantScore:    "7",
			wantFeedback: "Good structure and mostly correct grammar.",
		},
		{
			name:         "decimal score",
			raw:          "Score: 8.5\nFeedback: Strong vocabulary.",
			wantScore:    "8.5",
			wantFeedback: "Strong vocabulary.",
		},
		{
			name:         "score with trailing text on the same line",
			raw:          "Score: 6 out of 10\nFeedback: Decent attempt.",
			wantScore:    "6",
			wantFeedback: "Decent attempt.",
		},
		{
			name:         "feedback without its prefix",
			raw:          "Score: 4\nThe answer drifts off topic halfway through.",
			wantScore:    "4",
			wantFeedback: "The answer drifts off topic halfway through.",
		},
		{
			name:    "missing score prefix",
			raw:     "This essay deserves about a seven.",
			wantErr: true,
		},
		{
			name:         "score only, no newline",
			raw:          "Score: 9",
			wantScore:    "9",
			wantFeedback: "Feedback not found in the expected format after the score.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback, err := parseScoreAndFeedback(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}
