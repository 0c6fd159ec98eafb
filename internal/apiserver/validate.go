package apiserver

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload shapes for validation. Required fields are pointers so a missing
// key is distinguishable from a zero value; optional fields are nullable.

type userPayload struct {
	ID    *int    `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type orderPayload struct {
	ID        *int     `json:"id"`
	UserID    *int     `json:"user_id"`
	ProductID *int     `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	Total     *float64 `json:"total"`
	Status    *string  `json:"status"`
}

type reviewPayload struct {
	ID        *int    `json:"id"`
	UserID    *int    `json:"user_id"`
	ProductID *int    `json:"product_id"`
	Rating    *int    `json:"rating"`
	Title     *string `json:"title"`
	Body      *string `json:"body"`
}

func validateUser(raw json.RawMessage) error {
	var p userPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("user payload: %w", err)
	}
	var missing []string
	if p.ID == nil {
		missing = append(missing, "id")
	}
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.Email == nil {
		missing = append(missing, "email")
	}
	return missingErr("user", missing)
}

func validateOrder(raw json.RawMessage) error {
	var p orderPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("order payload: %w", err)
	}
	var missing []string
	if p.ID == nil {
		missing = append(missing, "id")
	}
	if p.UserID == nil {
		missing = append(missing, "user_id")
	}
	if p.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if p.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if p.Total == nil {
		missing = append(missing, "total")
	}
	if p.Status == nil {
		missing = append(missing, "status")
	}
	return missingErr("order", missing)
}

func validateReview(raw json.RawMessage) error {
	var p reviewPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("review payload: %w", err)
	}
	var missing []string
	if p.ID == nil {
		missing = append(missing, "id")
	}
	if p.UserID == nil {
		missing = append(missing, "user_id")
	}
	if p.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if p.Rating == nil {
		missing = append(missing, "rating")
	}
	if p.Title == nil {
		missing = append(missing, "title")
	}
	if p.Body == nil {
		missing = append(missing, "body")
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return fmt.Errorf("review rating %d out of range [1,5]", *p.Rating)
	}
	return missingErr("review", missing)
}

func missingErr(entity string, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%s payload missing required fields: %s", entity, strings.Join(missing, ", "))
}
