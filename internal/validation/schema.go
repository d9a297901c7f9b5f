// Package validation maps raw JSON payloads onto the four request schemas.
// Fields are pointers so that an absent field is distinguishable from a zero
// value; Validate reports every violated field at once.
package validation

import (
	"unicode/utf8"

	"adboard/internal/models"
)

const (
	maxNameLength     = 100
	minPasswordLength = 8
	maxPasswordLength = 100
)

// CreateUserRequest is the payload for POST /users/.
type CreateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// Validate checks presence and length constraints, aggregating all violations.
func (r *CreateUserRequest) Validate() *models.AppError {
	var fields []models.FieldError

	if r.Name == nil {
		fields = append(fields, models.FieldError{Field: "name", Message: "name is required"})
	} else {
		fields = appendNameErrors(fields, *r.Name)
	}

	if r.Password == nil {
		fields = append(fields, models.FieldError{Field: "password", Message: "password is required"})
	} else {
		fields = appendPasswordErrors(fields, *r.Password)
	}

	return validationError(fields)
}

// UpdateUserRequest is the payload for PATCH /users/:id. Both fields are
// optional; constraints apply only to fields that are present.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r *UpdateUserRequest) Validate() *models.AppError {
	var fields []models.FieldError

	if r.Name != nil {
		fields = appendNameErrors(fields, *r.Name)
	}
	if r.Password != nil {
		fields = appendPasswordErrors(fields, *r.Password)
	}

	return validationError(fields)
}

// CreateAdvertisementRequest is the payload for POST /advertisements/.
type CreateAdvertisementRequest struct {
	Header  *string `json:"header"`
	Desc    *string `json:"desc"`
	OwnerID *uint   `json:"owner_id"`
}

func (r *CreateAdvertisementRequest) Validate() *models.AppError {
	var fields []models.FieldError

	if r.Header == nil {
		fields = append(fields, models.FieldError{Field: "header", Message: "header is required"})
	}
	if r.OwnerID == nil {
		fields = append(fields, models.FieldError{Field: "owner_id", Message: "owner_id is required"})
	}

	return validationError(fields)
}

// UpdateAdvertisementRequest is the payload for PATCH /advertisements/:id.
// The header stays required on update.
type UpdateAdvertisementRequest struct {
	Header *string `json:"header"`
	Desc   *string `json:"desc"`
}

func (r *UpdateAdvertisementRequest) Validate() *models.AppError {
	var fields []models.FieldError

	if r.Header == nil {
		fields = append(fields, models.FieldError{Field: "header", Message: "header is required"})
	}

	return validationError(fields)
}

// bounds count characters, not bytes, so multibyte input is not
// over-rejected
func appendNameErrors(fields []models.FieldError, name string) []models.FieldError {
	if utf8.RuneCountInString(name) > maxNameLength {
		fields = append(fields, models.FieldError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	return fields
}

func appendPasswordErrors(fields []models.FieldError, pw string) []models.FieldError {
	length := utf8.RuneCountInString(pw)
	if length < minPasswordLength {
		fields = append(fields, models.FieldError{Field: "password", Message: "password must be at least 8 characters long"})
	}
	if length > maxPasswordLength {
		fields = append(fields, models.FieldError{Field: "password", Message: "password must not exceed 100 characters"})
	}
	return fields
}

func validationError(fields []models.FieldError) *models.AppError {
	if len(fields) == 0 {
		return nil
	}
	return models.NewValidationError("Invalid request payload", fields...)
}
