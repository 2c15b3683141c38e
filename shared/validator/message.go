package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"mimetypes":   "{field} must be one of the allowed file types: {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

// message renders every validation failure, not just the first, so a request
// missing several fields reports all of them in one response.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		errStrs := make([]string, 0, len(valErrors))

		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr == "" {
				errStr = "{field} is invalid"
			}

			errStr = strings.ReplaceAll(errStr, "{field}", field)
			errStr = strings.ReplaceAll(errStr, "{param}", param)

			errStrs = append(errStrs, errStr)
		}

		return strings.Join(errStrs, "; ")
	}

	return err.Error()
}
