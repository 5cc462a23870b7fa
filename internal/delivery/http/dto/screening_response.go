package dto

type ScreeningResultResponse struct {
	ApplicantID string   `json:"applicantId"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
}
