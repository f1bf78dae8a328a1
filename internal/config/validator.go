package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/passforge/internal/logger"
	"github.com/alexisbeaulieu97/passforge/internal/password"
	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("state_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			return strings.TrimSpace(path) != "" && !strings.Contains(path, "\x00")
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			return logger.ValidLevel(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings checks field ranges and converts failures to ValidationError.
func ValidateSettings(cfg *Settings) error {
	if cfg == nil {
		return pferrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return pferrors.NewValidationError(field, describe(ve), err)
	}

	return pferrors.NewValidationError("settings", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		return fmt.Sprintf("must be between %d and %d, got %v", password.MinLength, password.MaxLength, fe.Value())
	case "log_level":
		return fmt.Sprintf("must be one of [%s], got %q", strings.Join(logger.Levels, " "), fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", fe.Field(), fe.Tag())
	}
}

// yamlishFieldName drops the root struct name so errors read like the file keys.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
