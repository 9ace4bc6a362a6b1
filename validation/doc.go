// Package validation validates configuration structs through struct tags
// using go-playground/validator.
//
// Field names in error messages come from the mapstructure tag, so a failure
// reads the same way as the config key that produced it:
//
//	type Config struct {
//	    TracerName string `mapstructure:"tracer_name" validate:"required"`
//	}
//	err := validation.Validate(cfg) // "tracer_name: is required"
package validation
