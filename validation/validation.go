package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

var ErrInvalidBracket = errors.New("invalid experience bracket")

type Validator struct {
	validator                *validator.Validate
	logger                   logger.Logger
	tagValidationDetailsOnce sync.Once
	tagValidationDetailsMap  map[string]tagValidationDetails
}

type tagValidationDetails struct {
	validatorFunc validator.Func
	err           error
}

func New(logger logger.Logger) (*Validator, error) {
	validator := &Validator{validator: validator.New(), logger: logger}
	validator.validator.RegisterTagNameFunc(useJSONFieldNames)
	if err := validator.registerCustomValidatorsForTags(); err != nil {
		return nil, err
	}

	return validator, nil
}

func (v *Validator) Validate(i any) error {

	if err := v.validator.Struct(i); err != nil {
		v.logger.Warn("validation failed", "err", err.Error())
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {

			tagValidationDetails, ok := v.getTagValidationDetails()[validationErrs[0].Tag()]
			if ok {
				return tagValidationDetails.err
			}

			switch validationErrs[0].Tag() {
			case "required":
				return fmt.Errorf("missing required field '%s'", validationErrs[0].Field())

			case "min", "max":
				return fmt.Errorf("value or length of field '%s' is not in the expected range", validationErrs[0].Field())

			case "oneof":
				return fmt.Errorf("field '%s' has an unsupported value", validationErrs[0].Field())
			}
		}
		return err
	}
	return nil
}

// ValidateAdvocates checks that every record satisfies the at-rest invariants. The error names the first offending record.
func (v *Validator) ValidateAdvocates(advocates []models.Advocate) error {
	for i, advocate := range advocates {
		if err := v.Validate(advocate); err != nil {
			return fmt.Errorf("invalid advocate record at position %d: %w", i, err)
		}
	}
	return nil
}

func (v *Validator) getTagValidationDetails() map[string]tagValidationDetails {
	v.tagValidationDetailsOnce.Do(func() {
		v.tagValidationDetailsMap = map[string]tagValidationDetails{
			"valid_bracket": {validatorFunc: v.isValidBracket, err: ErrInvalidBracket},
		}
	})
	return v.tagValidationDetailsMap
}

func (v *Validator) registerCustomValidatorsForTags() error {

	tagValidationDetailsMap := v.getTagValidationDetails()

	for tag, tagValidationDetails := range tagValidationDetailsMap {
		if err := v.validator.RegisterValidation(tag, tagValidationDetails.validatorFunc); err != nil {
			v.logger.Error("failed to register customer validator function", "err", err.Error())
			return err
		}
	}
	return nil
}

func useJSONFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// isValidBracket accepts an empty bracket (no constraint) and anything models.ParseBracket accepts.
func (v *Validator) isValidBracket(fl validator.FieldLevel) bool {
	bracket := fl.Field().String()
	if len(bracket) == 0 {
		return true
	}

	if _, err := models.ParseBracket(bracket); err != nil {
		v.logger.Warn("experience bracket is malformed", "bracket", bracket, "err", err.Error())
		return false
	}

	return true
}
