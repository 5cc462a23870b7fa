package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendedJobResponse struct {
	JobID       uuid.UUID `json:"jobId"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	JobType     string    `json:"jobType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
