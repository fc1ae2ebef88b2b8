package genchem

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError collects multiple validation issues
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid config: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return "config validation errors: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match config failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// configValidate checks struct tags on config types. Field names in issues
// use the json tag so they match what users write in config files.
var configValidate = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// addStructIssues runs the tag validator on cfg and records each failure.
func addStructIssues(cfg any, verr *ValidationError) {
	err := configValidate.Struct(cfg)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add(err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verr.Add(describeFieldError(fe))
	}
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "SystemConfig.species[1].mass"; drop the root type.
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s, got %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// ValidateSystemConfig performs comprehensive validation of a SystemConfig
func ValidateSystemConfig(cfg SystemConfig) error {
	err := &ValidationError{}

	addStructIssues(cfg, err)

	seen := make(map[string]bool)
	for _, sp := range cfg.Species {
		if sp.Name == "" {
			continue
		}
		if seen[sp.Name] {
			err.Add("duplicate species name: " + sp.Name)
		} else {
			seen[sp.Name] = true
		}
	}

	if err.HasIssues() {
		return err
	}
	return nil
}

// ValidateGeneratorConfig checks a generator configuration.
func ValidateGeneratorConfig(cfg GeneratorConfig) error {
	err := &ValidationError{}

	addStructIssues(cfg, err)

	if cfg.Species == 0 && cfg.MaxSpecies < cfg.MinSpecies {
		err.Add(fmt.Sprintf("max_species must be >= min_species, got %d < %d", cfg.MaxSpecies, cfg.MinSpecies))
	}

	if err.HasIssues() {
		return err
	}
	return nil
}
