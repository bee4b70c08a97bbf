package response

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors turns a binding failure into a field->message map suitable
// for the Errors slot of StandardApiResponse. Non-validation errors fall
// back to the raw error string.
func BindingErrors(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid uuid"
	case "datetime":
		return "must be a date in the form " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
