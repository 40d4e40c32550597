// Package types provides type definitions for structured data used throughout
// the resume-forge system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"university"`
	Year        string `json:"year,omitempty"`
}

// Experience is a single work experience entry.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
	Years       string `json:"years,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Project is a single project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ProfileSnapshot is the subject's structured data at the moment a pipeline
// invocation starts. It is caller-supplied and never mutated by the pipeline.
type ProfileSnapshot struct {
	Name           string          `json:"name" validate:"required,min=1"`
	Email          string          `json:"email" validate:"required,email"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	Links          []string        `json:"links,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Languages      []string        `json:"languages,omitempty"`
}

// JobContext is the target job a resume is tailored to.
type JobContext struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// Validate validates the ProfileSnapshot using the validator.
func (p *ProfileSnapshot) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the JobContext using the validator.
func (j *JobContext) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
