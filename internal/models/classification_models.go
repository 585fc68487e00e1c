package models

type ClassificationRequest struct {
	Inputs string `json:"inputs"`
	Aspect string `json:"aspect,omitempty"`
}

type ClassificationResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
