package render

import "fmt"

// MarkupError indicates a markup document that does not describe a query.
type MarkupError struct {
	Element string
	Reason  string
}

func (e MarkupError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("markup: %s", e.Reason)
	}
	return fmt.Sprintf("markup: <%s>: %s", e.Element, e.Reason)
}

// NewMarkupError creates a new markup error.
func NewMarkupError(element, format string, args ...any) error {
	return MarkupError{Element: element, Reason: fmt.Sprintf(format, args...)}
}
