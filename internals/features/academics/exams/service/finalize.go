package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/academics/exams/model"
	masterModel "schoolku_backend/internals/features/master/model"
	peopleModel "schoolku_backend/internals/features/people/model"
)

// Component is one weighted exam feeding a final result.
type Component struct {
	ExamID uuid.UUID `json:"exam_id"`
	Weight int       `json:"weight"`
}

// PreconditionError aborts a finalize run before any write happens.
// Controllers translate it to a 400.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

func precondition(format string, args ...any) *PreconditionError {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

// ValidateComponents enforces the weight contract: a non-empty list of
// distinct exams with non-negative integer weights summing to exactly
// 100. The same exam listed twice would double-count its marks, so
// duplicates are rejected outright.
func ValidateComponents(parts []Component) error {
	if len(parts) == 0 {
		return precondition("parts must be a non-empty list of {exam_id, weight}")
	}
	total := 0
	seen := make(map[uuid.UUID]struct{}, len(parts))
	for _, p := range parts {
		if p.Weight < 0 {
			return precondition("weights must be non-negative integers")
		}
		if _, dup := seen[p.ExamID]; dup {
			return precondition("Duplicate exam_id in parts")
		}
		seen[p.ExamID] = struct{}{}
		total += p.Weight
	}
	if total != 100 {
		return precondition("Weights must sum to 100 (got %d)", total)
	}
	return nil
}

// ScoreKey addresses one raw mark inside a finalize run.
type ScoreKey struct {
	ExamID    uuid.UUID
	StudentID uuid.UUID
	SubjectID uuid.UUID
}

// Round2 rounds to 2 decimal places, halves away from zero. Scores are
// never negative so this is round-half-up.
func Round2(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// WeightedTotal computes the rounded final score for one (student,
// subject) pair. A component without a mark contributes zero.
func WeightedTotal(parts []Component, scores map[ScoreKey]decimal.Decimal, studentID, subjectID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range parts {
		sc := scores[ScoreKey{ExamID: p.ExamID, StudentID: studentID, SubjectID: subjectID}]
		sum = sum.Add(sc.Mul(decimal.NewFromInt(int64(p.Weight))))
	}
	return Round2(sum.Div(decimal.NewFromInt(100)))
}

// Band is an inclusive [Min,Max] range mapping to a letter and GPA.
type Band struct {
	MinScore int
	MaxScore int
	Letter   string
	GPA      decimal.Decimal
}

// BandFor maps a score through bands sorted by MinScore descending.
// Returns ("", nil) when no band contains the score.
func BandFor(score decimal.Decimal, bands []Band) (string, *decimal.Decimal) {
	for _, b := range bands {
		min := decimal.NewFromInt(int64(b.MinScore))
		max := decimal.NewFromInt(int64(b.MaxScore))
		if score.GreaterThanOrEqual(min) && score.LessThanOrEqual(max) {
			gpa := b.GPA
			return b.Letter, &gpa
		}
	}
	return "", nil
}

type FinalizeRequest struct {
	ClassID   uuid.UUID
	SectionID uuid.UUID
	Year      int
	Parts     []Component
	Name      *string
	Publish   *bool
}

type FinalizeResult struct {
	FinalExamID   uuid.UUID `json:"final_exam_id"`
	FinalExamName string    `json:"final_exam_name"`
	Published     bool      `json:"published"`
	Upserts       int       `json:"upserts"`
}

type gradeLookup struct {
	Letter string
	GPA    *decimal.Decimal
}

// FinalizeAndPublish runs the whole aggregation in one transaction:
// precondition checks, one batch load of component marks, get-or-create
// of the final exam by (class, section, name), weighted totals for every
// (student, subject) pair, band mapping with a per-score cache, upserts,
// and the publish flip. Any failure rolls everything back.
func FinalizeAndPublish(ctx context.Context, db *gorm.DB, req FinalizeRequest) (*FinalizeResult, error) {
	if err := ValidateComponents(req.Parts); err != nil {
		return nil, err
	}

	var result *FinalizeResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clsCount, secCount int64
		if err := tx.Model(&masterModel.ClassModel{}).Where("class_id = ?", req.ClassID).Count(&clsCount).Error; err != nil {
			return err
		}
		if clsCount == 0 {
			return precondition("Invalid class_id")
		}
		if err := tx.Model(&masterModel.SectionModel{}).Where("section_id = ?", req.SectionID).Count(&secCount).Error; err != nil {
			return err
		}
		if secCount == 0 {
			return precondition("Invalid section_id")
		}

		// Parts hold distinct exam ids (ValidateComponents rejects
		// duplicates), so a plain count verifies existence.
		examIDs := make([]uuid.UUID, 0, len(req.Parts))
		for _, p := range req.Parts {
			examIDs = append(examIDs, p.ExamID)
		}
		var examCount int64
		if err := tx.Model(&m.ExamModel{}).Where("exam_id IN ?", examIDs).Count(&examCount).Error; err != nil {
			return err
		}
		if int(examCount) != len(examIDs) {
			return precondition("One or more exam_id not found")
		}

		var students []peopleModel.StudentModel
		if err := tx.Where("student_class_id = ? AND student_section_id = ?", req.ClassID, req.SectionID).
			Find(&students).Error; err != nil {
			return err
		}
		var subjects []masterModel.SubjectModel
		if err := tx.Where("subject_class_id = ?", req.ClassID).Find(&subjects).Error; err != nil {
			return err
		}
		if len(students) == 0 || len(subjects) == 0 {
			return precondition("No students or subjects found for this class/section")
		}

		// One batch load of every component mark.
		var marks []m.ExamMarkModel
		if err := tx.Where("exam_mark_exam_id IN ?", examIDs).Find(&marks).Error; err != nil {
			return err
		}
		scores := make(map[ScoreKey]decimal.Decimal, len(marks))
		for _, mark := range marks {
			scores[ScoreKey{
				ExamID:    mark.ExamMarkExamID,
				StudentID: mark.ExamMarkStudentID,
				SubjectID: mark.ExamMarkSubjectID,
			}] = mark.ExamMarkScore
		}

		finalName := fmt.Sprintf("Final Result %d", req.Year)
		if req.Name != nil && *req.Name != "" {
			finalName = *req.Name
		}

		components, err := sonic.Marshal(req.Parts)
		if err != nil {
			return err
		}

		// Reuse the final exam when it already exists, so re-running
		// finalization is idempotent at the exam-identity level.
		var finalExam m.ExamModel
		if err := tx.Where(
			"exam_class_id = ? AND exam_section_id = ? AND exam_name = ?",
			req.ClassID, req.SectionID, finalName,
		).Attrs(m.ExamModel{
			ExamClassID:   req.ClassID,
			ExamSectionID: req.SectionID,
			ExamName:      finalName,
		}).FirstOrCreate(&finalExam).Error; err != nil {
			return err
		}
		finalExam.ExamComponents = components

		bands, err := loadActiveBands(tx)
		if err != nil {
			return err
		}

		upserts := 0
		gradeCache := make(map[string]gradeLookup)

		for _, stu := range students {
			for _, sub := range subjects {
				total := WeightedTotal(req.Parts, scores, stu.StudentID, sub.SubjectID)

				key := total.String()
				grade, ok := gradeCache[key]
				if !ok {
					letter, gpa := BandFor(total, bands)
					grade = gradeLookup{Letter: letter, GPA: gpa}
					gradeCache[key] = grade
				}

				var mark m.ExamMarkModel
				err := tx.Where(
					"exam_mark_exam_id = ? AND exam_mark_student_id = ? AND exam_mark_subject_id = ?",
					finalExam.ExamID, stu.StudentID, sub.SubjectID,
				).First(&mark).Error
				switch {
				case err == nil:
					mark.ExamMarkScore = total
					mark.ExamMarkLetter = grade.Letter
					mark.ExamMarkGPA = grade.GPA
					if err := tx.Save(&mark).Error; err != nil {
						return err
					}
				case errors.Is(err, gorm.ErrRecordNotFound):
					mark = m.ExamMarkModel{
						ExamMarkExamID:    finalExam.ExamID,
						ExamMarkStudentID: stu.StudentID,
						ExamMarkSubjectID: sub.SubjectID,
						ExamMarkScore:     total,
						ExamMarkLetter:    grade.Letter,
						ExamMarkGPA:       grade.GPA,
					}
					if err := tx.Create(&mark).Error; err != nil {
						return err
					}
				default:
					return err
				}
				upserts++
			}
		}

		publish := req.Publish == nil || *req.Publish
		if publish && !finalExam.ExamIsPublished {
			finalExam.ExamIsPublished = true
		}
		if err := tx.Save(&finalExam).Error; err != nil {
			return err
		}

		result = &FinalizeResult{
			FinalExamID:   finalExam.ExamID,
			FinalExamName: finalExam.ExamName,
			Published:     finalExam.ExamIsPublished,
			Upserts:       upserts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadActiveBands returns the active scale's bands sorted by min score
// descending, or nil when no scale is active.
func loadActiveBands(tx *gorm.DB) ([]Band, error) {
	var scale m.GradeScaleModel
	err := tx.Where("grade_scale_is_active = ?", true).First(&scale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []m.GradeBandModel
	if err := tx.Where("grade_band_scale_id = ?", scale.GradeScaleID).
		Order("grade_band_min_score DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	bands := make([]Band, 0, len(rows))
	for _, b := range rows {
		bands = append(bands, Band{
			MinScore: b.GradeBandMinScore,
			MaxScore: b.GradeBandMaxScore,
			Letter:   b.GradeBandLetter,
			GPA:      b.GradeBandGPA,
		})
	}
	return bands, nil
}

// ApplyGrade stamps letter/gpa on a mark from the currently active
// scale, clearing both when the score falls outside every band.
func ApplyGrade(tx *gorm.DB, mark *m.ExamMarkModel) error {
	bands, err := loadActiveBands(tx)
	if err != nil {
		return err
	}
	letter, gpa := BandFor(mark.ExamMarkScore, bands)
	mark.ExamMarkLetter = letter
	mark.ExamMarkGPA = gpa
	return nil
}
