package dto

type ScamDetectionResponse struct {
	IsSuspicious bool     `json:"isSuspicious"`
	Score        float64  `json:"score"`
	Flags        []string `json:"flags"`
}
