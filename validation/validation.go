// validation.go - Validates JSON payloads against rule sets

// Package validation checks JSON payloads against per-entity rule sets.
//
// A rule set lists the accepted fields. In Create mode required fields
// must be present; in Update mode only the fields present in the payload
// are checked and returned, so absent fields keep their stored values.
package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	Create Mode = iota
	Update
)

// Kind is the JSON type a field must decode to.
type Kind int

const (
	String Kind = iota
	Number
	Integer
	Boolean
)

// Check runs after the field passed its type and constraint checks. It
// returns a violation message, or "" when the value is acceptable.
type Check func(ctx context.Context, value any) (string, error)

// Field is the rule set of one payload key.
type Field struct {
	Name string
	Kind Kind
	// Required fields must be present on create and must not be empty or
	// null whenever they are present.
	Required bool
	// Nullable fields accept null and the empty string, both stored as nil.
	Nullable bool
	// Constraint is a go-playground/validator tag such as "max=255".
	Constraint string
	Check      Check
}

type Rules []Field

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate decodes body and checks it against rules. It returns the
// accepted values, or *Errors when any field is invalid. A field's Check
// runs only when that field passed its own type and constraint checks, so
// a malformed value never reaches the database.
func (v *Validator) Validate(ctx context.Context, body []byte, rules Rules, mode Mode) (Payload, error) {
	raw, err := decodeObject(body)
	if err != nil {
		errs := &Errors{}
		errs.Add("body", "The request body must be a JSON object.")
		return nil, errs
	}

	payload := Payload{}
	errs := &Errors{}
	for _, field := range rules {
		value, present := raw[field.Name]
		if !present {
			if mode == Create && field.Required {
				errs.Add(field.Name, fmt.Sprintf("The %s field is required.", label(field.Name)))
			}
			continue
		}

		decoded, msg := v.checkField(field, value)
		if msg != "" {
			errs.Add(field.Name, msg)
			continue
		}
		payload[field.Name] = decoded
	}

	for _, field := range rules {
		value, ok := payload[field.Name]
		if !ok || value == nil || field.Check == nil {
			continue
		}
		msg, err := field.Check(ctx, value)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			errs.Add(field.Name, msg)
		}
	}

	if !errs.Empty() {
		return nil, errs
	}
	return payload, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("body is null")
	}
	return raw, nil
}

func (v *Validator) checkField(field Field, raw json.RawMessage) (any, string) {
	name := label(field.Name)

	if isNull(raw) {
		switch {
		case field.Nullable:
			return nil, ""
		case field.Required:
			return nil, fmt.Sprintf("The %s field is required.", name)
		default:
			return nil, typeMessage(field)
		}
	}

	value, ok := decodeKind(field.Kind, raw)
	if !ok {
		return nil, typeMessage(field)
	}

	if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
		switch {
		case field.Nullable:
			return nil, ""
		case field.Required:
			return nil, fmt.Sprintf("The %s field is required.", name)
		}
	}

	if field.Constraint != "" {
		if err := v.validate.Var(value, field.Constraint); err != nil {
			return nil, constraintMessage(field, err)
		}
	}
	return value, ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
