package validator

import (
	"encoding/json"
	"fmt"
	"homestay/shared/failure"
	"io"
	"regexp"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
)

const (
	phoneDigits        = 10
	phoneCountryPrefix = "91"
)

// NormalizePhone strips whitespace, hyphens, a leading '+' and the Indian country code.
// The country code is only removed when more than ten digits remain, so a local number
// that happens to start with 91 is left alone.
func NormalizePhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}

		return r
	}, raw)
	phone = strings.TrimPrefix(phone, "+")

	if len(phone) > phoneDigits && strings.HasPrefix(phone, phoneCountryPrefix) {
		phone = strings.TrimPrefix(phone, phoneCountryPrefix)
	}

	return phone
}

func registerPersonNameValidation(field val.FieldLevel) bool {
	return personNamePattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerLooseEmailValidation(field val.FieldLevel) bool {
	return emailPattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(NormalizePhone(field.Field().String()))
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("personname", registerPersonNameValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("looseemail", registerLooseEmailValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}
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

// Decode only decodes the body. Used by handlers whose payload goes through the form engine,
// which reports per-field messages instead of the first struct error.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
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

// Check reports whether field satisfies tag.
func Check(field any, tag string) bool {
	return validate.Var(field, tag) == nil
}
