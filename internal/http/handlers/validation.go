package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.MinThreshold < 0 {
		errs = append(errs, ProductValidationError{Field: "MinThreshold", Description: "Threshold cannot be negative"})
	}
	return errs
}
