// Package forms holds the page form models and their pre-submit validation.
// Validation failures block the backend call and re-render the form with an
// inline message.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field name instead of the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Signup struct {
	DisplayName string `form:"display_name" validate:"required,min=2,max=80"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=8"`
	Role        string `form:"role" validate:"required,oneof=student mentor"`
}

type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type OTPVerify struct {
	Email string `form:"email" validate:"required,email"`
	Code  string `form:"otp" validate:"required,len=6,numeric"`
}

type ForgotPassword struct {
	Email string `form:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token    string `form:"token" validate:"required"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

type UpdatePassword struct {
	Current  string `form:"current_password" validate:"required"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

type ConnectionApply struct {
	MentorID string `form:"mentor_id" validate:"required"`
	Message  string `form:"message" validate:"max=500"`
}

type RoomCreate struct {
	Topic       string `form:"topic" validate:"required,min=3,max=120"`
	Description string `form:"description" validate:"max=500"`
}

type UniversityAdd struct {
	Name    string `form:"name" validate:"required,min=2,max=160"`
	Country string `form:"country" validate:"required,min=2,max=80"`
	City    string `form:"city" validate:"max=80"`
	Website string `form:"website" validate:"omitempty,url"`
}

type Review struct {
	Rating int    `form:"rating" validate:"required,gte=1,lte=5"`
	Body   string `form:"body" validate:"max=1000"`
}

type NegotiationResponse struct {
	Action       string `form:"action" validate:"required,oneof=accept decline counter"`
	CounterCents int64  `form:"counter_cents" validate:"required_if=Action counter,gte=0"`
}

// Validate checks a form model and returns a user-facing message for the
// first failing field, or nil.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return fmt.Errorf("invalid input")
	}
	return fmt.Errorf("%s", message(errs[0]))
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain only digits"
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return field + " has an unsupported value"
	case "url":
		return "enter a valid URL"
	case "gte", "lte":
		return field + " is out of range"
	}
	return field + " is invalid"
}
