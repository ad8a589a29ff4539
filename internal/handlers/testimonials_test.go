package handlers

import "testing"

func TestVisitorSubmissionArrivesUnapproved(t *testing.T) {
	// A visitor claiming approved:true in the payload must not bypass
	// moderation.
	got := visitorSubmission(&testimonialPayload{
		Name: "Sara", Quote: "حديقة رائعة", Rating: 4, Approved: true,
	})

	if got.Approved {
		t.Error("public submission came through approved")
	}
	if got.Rating != 4 {
		t.Errorf("Rating = %d, want 4 preserved", got.Rating)
	}
}

func TestVisitorSubmissionClampsRating(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		want   int
	}{
		{"zero", 0, 5},
		{"too high", 9, 5},
		{"negative", -1, 5},
		{"in range", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visitorSubmission(&testimonialPayload{Name: "n", Quote: "q", Rating: tt.rating})
			if got.Rating != tt.want {
				t.Errorf("Rating = %d, want %d", got.Rating, tt.want)
			}
		})
	}
}
