package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobPosting represents a job posting handed to the engine by the
// ingestion layer. Title is the only required field; everything else
// degrades gracefully when absent.
type JobPosting struct {
	ID                 uuid.UUID `json:"id,omitempty"`
	Title              string    `json:"title" validate:"required"`
	Company            string    `json:"company,omitempty"`
	Description        string    `json:"description,omitempty"`
	Requirements       string    `json:"requirements,omitempty"`
	Location           string    `json:"location,omitempty"`
	SalaryRange        string    `json:"salary_range,omitempty"`
	ExperienceRequired string    `json:"experience_required,omitempty"`
	URL                string    `json:"url,omitempty" validate:"omitempty,url"`
}

var jobValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the posting for structurally invalid input. Missing
// optional fields are not errors; the scorer handles them.
func (j *JobPosting) Validate() error {
	return jobValidator.Struct(j)
}

// CombinedText joins title, description and requirements into the text
// the matching engine scans. Empty fields are skipped so a posting with
// only a requirements blob is still scoreable.
func (j *JobPosting) CombinedText() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{j.Title, j.Description, j.Requirements} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
