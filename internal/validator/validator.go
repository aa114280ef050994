package validator

import (
	"reflect"
	"strings"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator wraps struct-tag validation with the custom rules the
// compass API relies on.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// ValidateVar validates a single value against a tag expression
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.structValidator.Var(field, tag)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("compass_role", validateRole)
	validate.RegisterValidation("likert", validateLikert)
	validate.RegisterValidation("question_id", validateQuestionID)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions

func validateRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(models.Role(fl.Field().String()))
}

func validateLikert(fl validator.FieldLevel) bool {
	value := fl.Field().Int()
	return value >= models.LikertMin && value <= models.LikertMax
}

func validateQuestionID(fl validator.FieldLevel) bool {
	_, ok := models.QuestionByID(fl.Field().String())
	return ok
}
