package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/master/model"
)

/* =======================
   Section
======================= */

type SectionCreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type SectionUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
}

type SectionResponse struct {
	SectionID uuid.UUID `json:"section_id"`
	Name      string    `json:"name"`
}

func (r *SectionCreateRequest) ToModel() model.SectionModel {
	return model.SectionModel{SectionName: strings.TrimSpace(r.Name)}
}

func FromSectionModel(s model.SectionModel) SectionResponse {
	return SectionResponse{SectionID: s.SectionID, Name: s.SectionName}
}

/* =======================
   Class
======================= */

type ClassCreateRequest struct {
	Name       string      `json:"name" validate:"required,max=255"`
	SectionIDs []uuid.UUID `json:"section_ids,omitempty"`
}

type ClassUpdateRequest struct {
	Name       *string      `json:"name,omitempty" validate:"omitempty,max=255"`
	SectionIDs *[]uuid.UUID `json:"section_ids,omitempty"`
}

type ClassResponse struct {
	ClassID  uuid.UUID         `json:"class_id"`
	Name     string            `json:"name"`
	Sections []SectionResponse `json:"sections"`
}

func (r *ClassCreateRequest) ToModel() model.ClassModel {
	return model.ClassModel{ClassName: strings.TrimSpace(r.Name)}
}

func FromClassModel(cls model.ClassModel) ClassResponse {
	sections := make([]SectionResponse, 0, len(cls.Sections))
	for _, s := range cls.Sections {
		sections = append(sections, FromSectionModel(s))
	}
	return ClassResponse{ClassID: cls.ClassID, Name: cls.ClassName, Sections: sections}
}

/* =======================
   Subject
======================= */

type SubjectCreateRequest struct {
	ClassID     uuid.UUID `json:"class_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=255"`
	IsTheory    *bool     `json:"is_theory,omitempty"`
	IsPractical *bool     `json:"is_practical,omitempty"`
}

type SubjectUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	IsTheory    *bool   `json:"is_theory,omitempty"`
	IsPractical *bool   `json:"is_practical,omitempty"`
}

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	ClassID     uuid.UUID `json:"class_id"`
	Name        string    `json:"name"`
	IsTheory    bool      `json:"is_theory"`
	IsPractical bool      `json:"is_practical"`
}

func (r *SubjectCreateRequest) ToModel() model.SubjectModel {
	isTheory := true
	if r.IsTheory != nil {
		isTheory = *r.IsTheory
	}
	isPractical := false
	if r.IsPractical != nil {
		isPractical = *r.IsPractical
	}
	return model.SubjectModel{
		SubjectClassID:     r.ClassID,
		SubjectName:        strings.TrimSpace(r.Name),
		SubjectIsTheory:    isTheory,
		SubjectIsPractical: isPractical,
	}
}

func (r *SubjectUpdateRequest) ApplyUpdates(s *model.SubjectModel) {
	if r.Name != nil {
		s.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.IsTheory != nil {
		s.SubjectIsTheory = *r.IsTheory
	}
	if r.IsPractical != nil {
		s.SubjectIsPractical = *r.IsPractical
	}
}

func FromSubjectModel(s model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:   s.SubjectID,
		ClassID:     s.SubjectClassID,
		Name:        s.SubjectName,
		IsTheory:    s.SubjectIsTheory,
		IsPractical: s.SubjectIsPractical,
	}
}
