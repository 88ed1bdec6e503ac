// payload.go - Typed access to validated fields

package validation

// Payload holds the validated fields of a request. Only keys present in
// the request body appear; a nil value is an explicit null.
type Payload map[string]any

func (p Payload) String(name string) (string, bool) {
	s, ok := p[name].(string)
	return s, ok
}

// NullableString returns the value of a nullable string field and whether
// the field was present at all.
func (p Payload) NullableString(name string) (*string, bool) {
	value, ok := p[name]
	if !ok {
		return nil, false
	}
	s, isString := value.(string)
	if !isString {
		return nil, true
	}
	return &s, true
}

func (p Payload) Float(name string) (float64, bool) {
	f, ok := p[name].(float64)
	return f, ok
}

func (p Payload) Int(name string) (int64, bool) {
	i, ok := p[name].(int64)
	return i, ok
}

func (p Payload) Bool(name string) (bool, bool) {
	b, ok := p[name].(bool)
	return b, ok
}
