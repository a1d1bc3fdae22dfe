package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/academics/exams/model"
	"schoolku_backend/internals/features/academics/exams/service"
)

/* =======================
   Grade scale & bands
======================= */

type GradeBandInput struct {
	MinScore int             `json:"min_score" validate:"min=0,max=100"`
	MaxScore int             `json:"max_score" validate:"min=0,max=100"`
	Letter   string          `json:"letter" validate:"required,max=5"`
	GPA      decimal.Decimal `json:"gpa"`
}

type GradeScaleCreateRequest struct {
	Name  string           `json:"name" validate:"required,max=100"`
	Bands []GradeBandInput `json:"bands" validate:"required,min=1,dive"`
}

type GradeBandResponse struct {
	GradeBandID uuid.UUID       `json:"grade_band_id"`
	MinScore    int             `json:"min_score"`
	MaxScore    int             `json:"max_score"`
	Letter      string          `json:"letter"`
	GPA         decimal.Decimal `json:"gpa"`
}

type GradeScaleResponse struct {
	GradeScaleID uuid.UUID           `json:"grade_scale_id"`
	Name         string              `json:"name"`
	IsActive     bool                `json:"is_active"`
	Bands        []GradeBandResponse `json:"bands"`
}

func (r *GradeScaleCreateRequest) ToModel() model.GradeScaleModel {
	scale := model.GradeScaleModel{
		GradeScaleName: strings.TrimSpace(r.Name),
	}
	for _, b := range r.Bands {
		scale.Bands = append(scale.Bands, model.GradeBandModel{
			GradeBandMinScore: b.MinScore,
			GradeBandMaxScore: b.MaxScore,
			GradeBandLetter:   strings.TrimSpace(b.Letter),
			GradeBandGPA:      b.GPA,
		})
	}
	return scale
}

// ServiceBands converts the request bands for the overlap check.
func (r *GradeScaleCreateRequest) ServiceBands() []service.Band {
	bands := make([]service.Band, 0, len(r.Bands))
	for _, b := range r.Bands {
		bands = append(bands, service.Band{
			MinScore: b.MinScore,
			MaxScore: b.MaxScore,
			Letter:   b.Letter,
			GPA:      b.GPA,
		})
	}
	return bands
}

func FromGradeScaleModel(s model.GradeScaleModel) GradeScaleResponse {
	resp := GradeScaleResponse{
		GradeScaleID: s.GradeScaleID,
		Name:         s.GradeScaleName,
		IsActive:     s.GradeScaleIsActive,
		Bands:        []GradeBandResponse{},
	}
	for _, b := range s.Bands {
		resp.Bands = append(resp.Bands, GradeBandResponse{
			GradeBandID: b.GradeBandID,
			MinScore:    b.GradeBandMinScore,
			MaxScore:    b.GradeBandMaxScore,
			Letter:      b.GradeBandLetter,
			GPA:         b.GradeBandGPA,
		})
	}
	return resp
}

/* =======================
   Exams & marks
======================= */

type ExamCreateRequest struct {
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
}

type ExamResponse struct {
	ExamID      uuid.UUID `json:"exam_id"`
	ClassID     uuid.UUID `json:"class_id"`
	SectionID   uuid.UUID `json:"section_id"`
	Name        string    `json:"name"`
	IsPublished bool      `json:"is_published"`
	Components  any       `json:"components,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *ExamCreateRequest) ToModel() model.ExamModel {
	return model.ExamModel{
		ExamClassID:   r.ClassID,
		ExamSectionID: r.SectionID,
		ExamName:      strings.TrimSpace(r.Name),
	}
}

func FromExamModel(e model.ExamModel) ExamResponse {
	resp := ExamResponse{
		ExamID:      e.ExamID,
		ClassID:     e.ExamClassID,
		SectionID:   e.ExamSectionID,
		Name:        e.ExamName,
		IsPublished: e.ExamIsPublished,
		CreatedAt:   e.ExamCreatedAt,
	}
	if len(e.ExamComponents) > 0 {
		resp.Components = e.ExamComponents
	}
	return resp
}

type ExamMarkUpsertRequest struct {
	StudentID uuid.UUID       `json:"student_id" validate:"required"`
	SubjectID uuid.UUID       `json:"subject_id" validate:"required"`
	Score     decimal.Decimal `json:"score"`
}

type ExamMarkResponse struct {
	ExamMarkID uuid.UUID        `json:"exam_mark_id"`
	ExamID     uuid.UUID        `json:"exam_id"`
	StudentID  uuid.UUID        `json:"student_id"`
	SubjectID  uuid.UUID        `json:"subject_id"`
	Score      decimal.Decimal  `json:"score"`
	Letter     string           `json:"letter"`
	GPA        *decimal.Decimal `json:"gpa,omitempty"`
}

func FromExamMarkModel(m model.ExamMarkModel) ExamMarkResponse {
	return ExamMarkResponse{
		ExamMarkID: m.ExamMarkID,
		ExamID:     m.ExamMarkExamID,
		StudentID:  m.ExamMarkStudentID,
		SubjectID:  m.ExamMarkSubjectID,
		Score:      m.ExamMarkScore,
		Letter:     m.ExamMarkLetter,
		GPA:        m.ExamMarkGPA,
	}
}

/* =======================
   Finalize
======================= */

type FinalizeRequest struct {
	ClassID   uuid.UUID           `json:"class_id" validate:"required"`
	SectionID uuid.UUID           `json:"section_id" validate:"required"`
	Year      int                 `json:"year" validate:"required,min=1900"`
	Parts     []service.Component `json:"parts" validate:"required,min=1"`
	Name      *string             `json:"name,omitempty" validate:"omitempty,max=200"`
	Publish   *bool               `json:"publish,omitempty"`
}

func (r *FinalizeRequest) ToService() service.FinalizeRequest {
	return service.FinalizeRequest{
		ClassID:   r.ClassID,
		SectionID: r.SectionID,
		Year:      r.Year,
		Parts:     r.Parts,
		Name:      r.Name,
		Publish:   r.Publish,
	}
}
