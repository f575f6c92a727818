package interviews

import (
	"testing"

	"devtrack/internal/constants"
)

func TestNextStage(t *testing.T) {
	tests := []struct {
		from constants.InterviewStatus
		want constants.InterviewStatus
	}{
		{constants.InterviewApplied, constants.InterviewHR},
		{constants.InterviewHR, constants.InterviewTechnical},
		{constants.InterviewTechnical, constants.InterviewOffer},
		{constants.InterviewOffer, constants.InterviewOffer},
		{constants.InterviewRejected, constants.InterviewRejected},
	}

	for _, tt := range tests {
		if got := NextStage(tt.from); got != tt.want {
			t.Errorf("NextStage(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}
