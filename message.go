package fieldcheck

// ruleMessage holds the code and failure message shared by every rule type.
type ruleMessage struct {
	code string
	text string
}

// Message returns the text reported to the field when the rule fails.
func (m *ruleMessage) Message() string {
	return m.text
}

// Code returns the machine-readable error code of the rule.
func (m *ruleMessage) Code() string {
	return m.code
}

// SetMessage replaces the failure message.
func (m *ruleMessage) SetMessage(text string) {
	m.text = text
}
