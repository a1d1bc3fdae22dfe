package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestValidateComponents(t *testing.T) {
	examA := uuid.New()
	examB := uuid.New()

	tests := []struct {
		name    string
		parts   []Component
		wantErr string
	}{
		{
			name:    "empty parts",
			parts:   nil,
			wantErr: "non-empty",
		},
		{
			name:    "negative weight",
			parts:   []Component{{ExamID: examA, Weight: -10}, {ExamID: examB, Weight: 110}},
			wantErr: "non-negative",
		},
		{
			name:    "sum below 100",
			parts:   []Component{{ExamID: examA, Weight: 49}, {ExamID: examB, Weight: 50}},
			wantErr: "Weights must sum to 100 (got 99)",
		},
		{
			name:    "sum above 100",
			parts:   []Component{{ExamID: examA, Weight: 51}, {ExamID: examB, Weight: 50}},
			wantErr: "Weights must sum to 100 (got 101)",
		},
		{
			name:    "duplicate exam id",
			parts:   []Component{{ExamID: examA, Weight: 50}, {ExamID: examA, Weight: 50}},
			wantErr: "Duplicate exam_id",
		},
		{
			name:  "exactly 100",
			parts: []Component{{ExamID: examA, Weight: 40}, {ExamID: examB, Weight: 60}},
		},
		{
			name:  "zero weight component is allowed",
			parts: []Component{{ExamID: examA, Weight: 0}, {ExamID: examB, Weight: 100}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponents(tt.parts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var pre *PreconditionError
			require.ErrorAs(t, err, &pre)
			assert.Contains(t, pre.Message, tt.wantErr)
		})
	}
}

func TestRound2_HalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"84.005", "84.01"},
		{"84.004", "84"},
		{"74.995", "75"},
		{"0.125", "0.13"},
		{"54", "54"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Round2(dec(t, tt.in))
			assert.True(t, got.Equal(dec(t, tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestWeightedTotal(t *testing.T) {
	examA := uuid.New()
	examB := uuid.New()
	examC := uuid.New()
	student1 := uuid.New()
	student2 := uuid.New()
	subject := uuid.New()

	parts := []Component{
		{ExamID: examA, Weight: 25},
		{ExamID: examB, Weight: 25},
		{ExamID: examC, Weight: 50},
	}

	scores := map[ScoreKey]decimal.Decimal{
		{ExamID: examA, StudentID: student1, SubjectID: subject}: dec(t, "80"),
		{ExamID: examB, StudentID: student1, SubjectID: subject}: dec(t, "60"),
		{ExamID: examC, StudentID: student1, SubjectID: subject}: dec(t, "78"),
		// student2 only sat examC; the other components count as 0.
		{ExamID: examC, StudentID: student2, SubjectID: subject}: dec(t, "108"),
	}

	// 80*.25 + 60*.25 + 78*.50 = 74.00
	total1 := WeightedTotal(parts, scores, student1, subject)
	assert.True(t, total1.Equal(dec(t, "74")), "got %s", total1)

	// 0*.25 + 0*.25 + 108*.50 = 54.00
	total2 := WeightedTotal(parts, scores, student2, subject)
	assert.True(t, total2.Equal(dec(t, "54")), "got %s", total2)

	// A student with no marks at all lands on 0.
	total3 := WeightedTotal(parts, scores, uuid.New(), subject)
	assert.True(t, total3.IsZero(), "got %s", total3)
}

func TestWeightedTotal_RoundsHalfUp(t *testing.T) {
	examA := uuid.New()
	examB := uuid.New()
	student := uuid.New()
	subject := uuid.New()

	parts := []Component{
		{ExamID: examA, Weight: 50},
		{ExamID: examB, Weight: 50},
	}
	scores := map[ScoreKey]decimal.Decimal{
		// 84.25*.5 + 83.76*.5 = 84.005 -> 84.01
		{ExamID: examA, StudentID: student, SubjectID: subject}: dec(t, "84.25"),
		{ExamID: examB, StudentID: student, SubjectID: subject}: dec(t, "83.76"),
	}

	total := WeightedTotal(parts, scores, student, subject)
	assert.Equal(t, "84.01", total.StringFixed(2))
}

func TestBandFor(t *testing.T) {
	// Sorted descending by min score, like the loader returns them.
	bands := []Band{
		{MinScore: 80, MaxScore: 100, Letter: "A+", GPA: dec(t, "5.00")},
		{MinScore: 70, MaxScore: 79, Letter: "A", GPA: dec(t, "4.00")},
		{MinScore: 60, MaxScore: 69, Letter: "A-", GPA: dec(t, "3.50")},
		{MinScore: 33, MaxScore: 59, Letter: "C", GPA: dec(t, "2.00")},
	}

	tests := []struct {
		score      string
		wantLetter string
		wantGPA    string
	}{
		{"74", "A", "4.00"},
		{"74.00", "A", "4.00"},
		{"80", "A+", "5.00"},   // lower boundary inclusive
		{"100", "A+", "5.00"},  // upper boundary inclusive
		{"79", "A", "4.00"},
		{"54", "C", "2.00"},
		{"33", "C", "2.00"},
	}
	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			letter, gpa := BandFor(dec(t, tt.score), bands)
			assert.Equal(t, tt.wantLetter, letter)
			require.NotNil(t, gpa)
			assert.Equal(t, tt.wantGPA, gpa.StringFixed(2))
		})
	}
}

func TestBandFor_NoCoverage(t *testing.T) {
	bands := []Band{
		{MinScore: 60, MaxScore: 100, Letter: "P", GPA: dec(t, "3.00")},
	}

	// Below every band: cleared grade.
	letter, gpa := BandFor(dec(t, "42"), bands)
	assert.Equal(t, "", letter)
	assert.Nil(t, gpa)

	// Gap between bands behaves the same.
	gapped := []Band{
		{MinScore: 80, MaxScore: 100, Letter: "A+", GPA: dec(t, "5.00")},
		{MinScore: 0, MaxScore: 59, Letter: "F", GPA: dec(t, "0.00")},
	}
	letter, gpa = BandFor(dec(t, "65"), gapped)
	assert.Equal(t, "", letter)
	assert.Nil(t, gpa)

	// No active scale means no bands at all.
	letter, gpa = BandFor(dec(t, "65"), nil)
	assert.Equal(t, "", letter)
	assert.Nil(t, gpa)
}
