package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"lessons/shared/failure"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)

		return ok && strings.TrimSpace(str) != ""
	})
	if err != nil {
		panic(err)
	}
}

// RegisterStringRule adds a custom tag that validates string fields with fn.
// Domain packages call it from init to expose their own vocabularies.
func RegisterStringRule(tag, message string, fn func(string) bool) error {
	messages[tag] = message

	err := validate.RegisterValidation(tag, func(fl val.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)

		return ok && fn(str)
	})
	if err != nil {
		return fmt.Errorf("failed to register %s validation: %w", tag, err)
	}

	return nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
