package ec4

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"yaml", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// validateInput checks the struct tags of an input and reports the first
// violation as an *InvalidInputError.
func validateInput(group string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	value, _ := fe.Value().(float64)
	return &InvalidInputError{
		Quantity: group + "." + fe.Field(),
		Value:    value,
		Reason:   describeRule(fe),
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return "must be a finite number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must not be less than " + fe.Param()
	case "lte":
		return "must not exceed " + fe.Param()
	case "ltefield":
		return "must not exceed " + strings.ToLower(fe.Param())
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}

// requirePositive aborts a design step on a non-finite or non-positive result.
func requirePositive(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InvalidInputError{Quantity: quantity, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}
