package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var settings = newValidator()

// ValidationError describes one invalid setting by its config key
type ValidationError struct {
	Key     string
	Tag     string
	Value   string
	Message string
}

// ValidationErrors collects every invalid setting
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

type configValidator struct {
	v *validator.Validate
}

func newValidator() *configValidator {
	v := validator.New()

	// Report fields by their config key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("mapstructure")
		if name == "-" {
			return ""
		}
		return name
	})

	return &configValidator{v: v}
}

func (c *configValidator) validate(cfg *Config) error {
	var errs ValidationErrors

	if err := c.v.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			key := configKey(fe.Namespace())
			errs = append(errs, ValidationError{
				Key:     key,
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: message(key, fe),
			})
		}
	}

	if name := cfg.Filter.Default; name != "" {
		if _, ok := cfg.Filter.Presets[name]; !ok {
			errs = append(errs, ValidationError{
				Key:     "filter.default",
				Tag:     "preset",
				Value:   name,
				Message: fmt.Sprintf("filter.default refers to unknown preset '%s'", name),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// configKey turns "Config.api.url" into "api.url"
func configKey(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return key
}

func message(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "url":
		return fmt.Sprintf("%s must be a valid URL, got '%v'", key, fe.Value())
	case "oneof":
		return fmt.Sprintf("invalid %s: %v (must be one of: %s)", key, fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' check", key, fe.Tag())
	}
}

// validateConfig checks every setting and reports all problems at once
func validateConfig(cfg *Config) error {
	return settings.validate(cfg)
}
