package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details renders the errors as a field to message map for error responses.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("hotel_name", validateHotelName); err != nil {
		log.Fatal("Failed to register 'hotel_name' validator",
			"error", err,
		)
	}

	log.Debug("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// validateHotelName rejects names that are blank or carry control characters. Empty values
// pass so the tag composes with required_without.
func validateHotelName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		return r < 0x20 || r == 0x7f
	})
}

// ValidateBooking checks a booking request. A range whose end is not after its start yields
// ErrInvalidRange; every other problem is reported as ValidationErrors.
func (v *BookingValidator) ValidateBooking(req *model.BookingRequest) error {
	if err := v.check(req); err != nil {
		return err
	}
	return req.Interval().Validate()
}

// ValidateAvailability checks an availability query the same way as ValidateBooking.
func (v *BookingValidator) ValidateAvailability(q *model.AvailabilityQuery) error {
	if err := v.check(q); err != nil {
		return err
	}
	return q.Interval().Validate()
}

func (v *BookingValidator) check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	translated := v.translateValidationErrors(validationErrs)
	for _, fe := range validationErrs {
		if fe.Tag() == "gtfield" {
			return fmt.Errorf("%w: %s", bookingserrors.ErrInvalidRange, translated.Error())
		}
	}
	return translated
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "required_without":
			message = fmt.Sprintf("%s is required when %s is missing", err.Field(), jsonName(err.Param()))
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "gtfield":
			message = fmt.Sprintf("%s must be after %s", err.Field(), jsonName(err.Param()))
		case "hotel_name":
			message = fmt.Sprintf("%s must not be blank or contain control characters", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

// jsonName maps a struct field named in a tag parameter to its JSON name.
func jsonName(field string) string {
	switch field {
	case "HotelID":
		return "hotel_id"
	case "HotelName":
		return "hotel_name"
	case "From":
		return "from"
	case "To":
		return "to"
	}
	return field
}
