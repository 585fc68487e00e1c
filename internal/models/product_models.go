package models

// ProductContext identifies the product a review was written about. It scopes
// which competitor brands and aspect vocabularies apply to an annotation.
type ProductContext struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}
