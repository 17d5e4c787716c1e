package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/villamar/stay-enquiries/internal/domain"
)

// PhonePolicy selects which additional guest slots must carry a phone
// number. Call sites that never render a phone field for a slot must not
// have that slot validated for one.
type PhonePolicy string

const (
	PhonesNone        PhonePolicy = "none"
	PhonesSecondGuest PhonePolicy = "second"
	PhonesAllGuests   PhonePolicy = "all"
)

func ParsePhonePolicy(s string) (PhonePolicy, bool) {
	switch PhonePolicy(s) {
	case PhonesNone, PhonesSecondGuest, PhonesAllGuests:
		return PhonePolicy(s), true
	default:
		return "", false
	}
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations,omitempty"`
}

// FormValidator checks a reservation form and collects every violation in
// one pass. It is pure and re-runnable; two calls on an unchanged form
// yield identical results.
type FormValidator struct {
	validate *validator.Validate
	phones   PhonePolicy
}

func New(phones PhonePolicy) *FormValidator {
	v := validator.New()

	// Report fields by their json names so violations line up with the
	// wire representation the caller sees.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FormValidator{
		validate: v,
		phones:   phones,
	}
}

func (v *FormValidator) Validate(form *domain.ReservationForm) Result {
	var out []Violation

	out = append(out, v.contactViolations(&form.Contact)...)

	if main := form.MainSlot(); main == nil || main.Document == nil {
		out = append(out, Violation{
			Field:   "guests[0].document",
			Message: "main guest identity document is required",
		})
	}

	for _, slot := range form.AdditionalSlots() {
		field := fmt.Sprintf("guests[%d]", slot.Index)
		if strings.TrimSpace(slot.FullName) == "" {
			out = append(out, Violation{
				Field:   field + ".full_name",
				Message: fmt.Sprintf("name for guest %d is required", slot.Index+1),
			})
		}
		if slot.Document == nil {
			out = append(out, Violation{
				Field:   field + ".document",
				Message: fmt.Sprintf("identity document for guest %d is required", slot.Index+1),
			})
		}
		if v.phoneRequired(slot.Index) && strings.TrimSpace(slot.Phone) == "" {
			out = append(out, Violation{
				Field:   field + ".phone",
				Message: fmt.Sprintf("phone for guest %d is required", slot.Index+1),
			})
		}
	}

	if _, ok := domain.ParsePaymentPreference(string(form.Payment)); !ok {
		out = append(out, Violation{
			Field:   "payment",
			Message: "payment preference must be card or cash",
		})
	}

	return Result{OK: len(out) == 0, Violations: out}
}

func (v *FormValidator) contactViolations(contact *domain.PrimaryContact) []Violation {
	err := v.validate.Struct(contact)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "contact", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(errs))
	for _, fe := range errs {
		message := fe.Error()
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fe.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", fe.Field())
		}
		violations = append(violations, Violation{
			Field:   "contact." + fe.Field(),
			Message: message,
		})
	}
	return violations
}

// phoneRequired applies the policy to an additional slot index (1-based
// within the roster, slot 1 = second guest).
func (v *FormValidator) phoneRequired(index int) bool {
	switch v.phones {
	case PhonesAllGuests:
		return index >= 1
	case PhonesSecondGuest:
		return index == 1
	default:
		return false
	}
}
