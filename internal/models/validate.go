package models

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
		return validDate(fl.Field().String())
	})

	return v
}

func validDate(s string) bool {
	if strings.Contains(s, "T") {
		_, err := time.Parse(DateTimeLayout, s)
		return err == nil
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

const (
	msgBlank      = "cannot be empty or contain only whitespace"
	msgDateFormat = "invalid date format, use ISO 8601 (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS)"
	msgCapacity   = "must be between 1 and 1000000"
	msgStatus     = "must be one of draft, published, cancelled, completed, active, inactive"
)

// ValidateCreate checks every field of a create payload, aggregating all
// violations, then normalizes it in place (trimmed strings, status defaulted
// to draft). A supplied eventId that is empty or whitespace-only is rejected
// before anything else; only an omitted one gets a generated id.
func ValidateCreate(in *CreateEventInput) error {
	if in.EventID != nil && strings.TrimSpace(*in.EventID) == "" {
		return ErrInvalidEventID
	}

	if err := Validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		out := &ValidationError{}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
		return out
	}

	if in.EventID != nil {
		trimmed := strings.TrimSpace(*in.EventID)
		in.EventID = &trimmed
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Organizer = strings.TrimSpace(in.Organizer)
	if in.Status == "" {
		in.Status = string(StatusDraft)
	}
	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "notblank":
		return msgBlank
	case "eventdate":
		return msgDateFormat
	case "oneof":
		return msgStatus
	case "min", "max":
		if fe.Kind() == reflect.Int {
			return msgCapacity
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "invalid value"
}

// ValidateUpdate checks each field present in a partial payload against the
// same per-field rules as create and aggregates all violations. Fields are
// checked by hand rather than by struct tags: validator's omitempty treats a
// pointer to a zero value as absent, which would let capacity 0 through.
func ValidateUpdate(u *UpdateEventInput) error {
	var errs []FieldError

	checkText := func(field string, v *string, maxLen int) {
		if v == nil {
			return
		}
		if strings.TrimSpace(*v) == "" {
			errs = append(errs, FieldError{field, msgBlank})
			return
		}
		if utf8.RuneCountInString(*v) > maxLen {
			errs = append(errs, FieldError{field, fmt.Sprintf("must be at most %d characters", maxLen)})
			return
		}
		*v = strings.TrimSpace(*v)
	}

	checkText("title", u.Title, MaxTitleLen)
	checkText("description", u.Description, MaxDescriptionLen)
	checkText("location", u.Location, MaxLocationLen)
	checkText("organizer", u.Organizer, MaxOrganizerLen)

	if u.Date != nil && !validDate(*u.Date) {
		errs = append(errs, FieldError{"date", msgDateFormat})
	}
	if u.Capacity != nil && (*u.Capacity < MinCapacity || *u.Capacity > MaxCapacity) {
		errs = append(errs, FieldError{"capacity", msgCapacity})
	}
	if u.Status != nil && !EventStatus(*u.Status).IsValid() {
		errs = append(errs, FieldError{"status", msgStatus})
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
