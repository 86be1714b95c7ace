package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gymapi/pkg/utils"
)

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	UseJSONFieldNames(v)
	return v
}

// UseJSONFieldNames makes validation errors report the json name of a field
// instead of the Go one. The router applies it to gin's validator as well.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

func validateRequest(req interface{}) error {
	if err := requestValidator.Struct(req); err != nil {
		return DescribeValidationError(err)
	}
	return nil
}

// DescribeValidationError turns a binding or validator failure into a 400
// error listing the offending fields.
func DescribeValidationError(err error) *utils.ServiceError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &utils.ServiceError{Kind: utils.ErrValidation, Message: "Invalid request body"}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			fields = append(fields, fe.Field())
		case fe.Param() != "":
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
	}
	return utils.NewValidationError(strings.Join(fields, ", "))
}
