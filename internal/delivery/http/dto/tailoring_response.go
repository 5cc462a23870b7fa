package dto

type TailoringResponse struct {
	Suggestions           []string `json:"suggestions"`
	TailoredResumePreview string   `json:"tailoredResumePreview"`
}
