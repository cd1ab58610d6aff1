package fieldcheck

// TextField is an in-memory [Field] for hosts without input widgets, such as
// HTTP handlers and tests. The zero value is a field with a missing value.
type TextField struct {
	value   *string
	marked  bool
	valid   bool
	message string
}

// NewTextField returns a field holding value.
func NewTextField(value string) *TextField {
	return &TextField{value: &value}
}

// NewMissingField returns a field with no value.
func NewMissingField() *TextField {
	return &TextField{}
}

// SetValue replaces the value. Feedback state is kept until the next evaluation.
func (f *TextField) SetValue(value string) {
	f.value = &value
}

// Clear removes the value.
func (f *TextField) Clear() {
	f.value = nil
}

// Value returns a copy of the current value, or nil when there is none.
func (f *TextField) Value() *string {
	if f.value == nil {
		return nil
	}
	s := *f.value
	return &s
}

func (f *TextField) MarkValid() {
	f.marked = true
	f.valid = true
	f.message = ""
}

func (f *TextField) MarkInvalid(message string) {
	f.marked = true
	f.valid = false
	f.message = message
}

// Marked reports whether the field has received feedback.
func (f *TextField) Marked() bool {
	return f.marked
}

// Valid reports whether the last feedback was MarkValid.
func (f *TextField) Valid() bool {
	return f.valid
}

// Message returns the message of the last MarkInvalid call.
func (f *TextField) Message() string {
	return f.message
}
