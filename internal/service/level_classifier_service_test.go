package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := NewLevelClassifierService()

	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"zero score", 0, "Beginner"},
		{"below elementary", 15, "Beginner"},
		{"elementary lower bound", 16, "Elementary"},
		{"below pre-intermediate", 24, "Elementary"},
		{"pre-intermediate lower bound", 25, "Pre-Intermediate"},
		{"below intermediate", 32, "Pre-Intermediate"},
		{"intermediate lower bound", 33, "Intermediate"},
		{"below upper intermediate", 39, "Intermediate"},
		{"upper intermediate lower bound", 40, "Upper Intermediate"},
		{"below advanced", 45, "Upper Intermediate"},
		{"advanced lower bound", 46, "Advanced"},
		{"far above the top band", 100, "Advanced"},
		{"fractional score on a boundary", 45.5, "Upper Intermediate"},
		{"negative score falls through to beginner", -1, "Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.score))
		})
	}
}
