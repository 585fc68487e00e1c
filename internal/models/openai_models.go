package models

type OpenAITopicResponse struct {
	Topics []Topic `json:"topics"`
}
