package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(Duration); ok {
				return int64(d)
			}
			return nil
		}, Duration(0))
		validate = v
	})
	return validate
}

// Validate checks every section and reports all problems at once. Level and
// format comparisons are case insensitive.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	err := structValidator().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	errz := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errz = append(errz, fmt.Errorf("%w: %s", ErrInvalidConfig, describe(fe)))
	}
	return errors.Join(errz...)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "hostname_port":
		return fmt.Sprintf("%s %q is not a host:port address", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", field, fe.Value(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return field + " must not be negative"
	default:
		return fmt.Sprintf("%s failed the %q check", field, fe.Tag())
	}
}
