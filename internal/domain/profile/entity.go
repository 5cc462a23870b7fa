package profile

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user profile not found")

type Experience struct {
	Title       string
	Years       float64
	Description string
}

type Project struct {
	Description string
}

// Preferences holds the user's stated job preferences. An empty slice means
// the user expressed no preference for that dimension.
type Preferences struct {
	Locations       []string
	JobTypes        []string
	SeniorityLevels []string
	Industries      []string
}

type UserProfile struct {
	ID          uuid.UUID
	Email       string
	Skills      []string
	Experience  []Experience
	Projects    []Project
	Preferences Preferences
}
