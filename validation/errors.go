// errors.go - Validation errors and their messages

package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Errors maps field names to violation messages. Fields keep the order in
// which they were reported.
type Errors struct {
	Fields map[string][]string
	order  []string
}

func (e *Errors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	if _, seen := e.Fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *Errors) Empty() bool { return len(e.Fields) == 0 }

// Message is the summary line of the error response: the first message,
// followed by the number of remaining ones.
func (e *Errors) Message() string {
	if e.Empty() {
		return ""
	}
	total := 0
	for _, msgs := range e.Fields {
		total += len(msgs)
	}
	first := e.Fields[e.order[0]][0]
	switch rest := total - 1; rest {
	case 0:
		return first
	case 1:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

func (e *Errors) Error() string { return "validation failed: " + e.Message() }

func typeMessage(field Field) string {
	name := label(field.Name)
	switch field.Kind {
	case Number:
		return fmt.Sprintf("The %s field must be a number.", name)
	case Integer:
		return fmt.Sprintf("The %s field must be an integer.", name)
	case Boolean:
		return fmt.Sprintf("The %s field must be true or false.", name)
	default:
		return fmt.Sprintf("The %s field must be a string.", name)
	}
}

func constraintMessage(field Field, err error) string {
	name := label(field.Name)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Sprintf("The %s field is invalid.", name)
	}

	fe := verrs[0]
	unit := ""
	if field.Kind == String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "max", "lte":
		return fmt.Sprintf("The %s field must not be greater than %s%s.", name, fe.Param(), unit)
	case "min", "gte":
		return fmt.Sprintf("The %s field must be at least %s%s.", name, fe.Param(), unit)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}
