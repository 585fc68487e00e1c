package models

import "time"

// ReviewRequest is the message consumed from the review request topic.
type ReviewRequest struct {
	ReviewID string         `json:"review_id" validate:"required"`
	Text     string         `json:"text"`
	Product  ProductContext `json:"product"`
}

// ReviewAnnotation is the message published once a review has been annotated
// and the item stored in DynamoDB.
type ReviewAnnotation struct {
	ReviewID    string           `json:"review_id" dynamodbav:"review_id"`
	Annotation  AnnotationResult `json:"annotation" dynamodbav:"annotation"`
	AnnotatedAt time.Time        `json:"annotated_at" dynamodbav:"annotated_at"`
}
