package contactform

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names one form input. The values match the HTML input names and the
// JSON keys sent to the relay.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}
}

// ParseField maps an input name to a Field.
func ParseField(name string) (Field, bool) {
	switch Field(strings.TrimSpace(name)) {
	case FieldName:
		return FieldName, true
	case FieldEmail:
		return FieldEmail, true
	case FieldPhone:
		return FieldPhone, true
	case FieldMessage:
		return FieldMessage, true
	default:
		return "", false
	}
}

// FormData is the lead captured by the contact form. All four fields are
// required; no format validation is applied beyond non-emptiness.
type FormData struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Value returns the value of field.
func (d FormData) Value(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldMessage:
		return d.Message
	default:
		return ""
	}
}

func (d *FormData) set(field Field, value string) bool {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldMessage:
		d.Message = value
	default:
		return false
	}
	return true
}

// IncompleteError reports required fields left empty.
type IncompleteError struct {
	Missing []Field
}

func (e *IncompleteError) Error() string {
	names := make([]string, len(e.Missing))
	for i, field := range e.Missing {
		names[i] = string(field)
	}
	return fmt.Sprintf("required fields are empty: %s", strings.Join(names, ", "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})
	return v
}

// CheckRequired returns an *IncompleteError naming every empty field, or nil
// when the form may be submitted.
func CheckRequired(data FormData) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	missing := make([]Field, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if field, ok := ParseField(fieldErr.Field()); ok {
			missing = append(missing, field)
		}
	}
	return &IncompleteError{Missing: missing}
}
