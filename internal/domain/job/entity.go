package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// StatusActive marks postings approved by the job board and eligible for
// recommendation.
const StatusActive = "active"

type Posting struct {
	ID              uuid.UUID
	Title           string
	Description     string
	CompanyName     string
	Location        string
	JobType         string
	SeniorityLevel  string
	Industry        string
	RequiredSkills  []string
	PreferredSkills []string
	Status          string
	CreatedAt       time.Time
}

func (p Posting) IsActive() bool {
	return p.Status == StatusActive
}
