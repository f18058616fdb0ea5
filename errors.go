package messageformat

import (
	"errors"
	"fmt"
)

// ErrMissingOtherCase indicates a plural/select/selectordinal construct
// without an "other" branch. This is a template-authoring error and is fatal
// at render time.
var ErrMissingOtherCase = errors.New("messageformat: missing 'other' case")

// ErrNilMessage indicates a nil ParsedMessage was handed to the renderer.
var ErrNilMessage = errors.New("messageformat: nil message")

// SyntaxError reports a malformed pattern with its source position.
// Line and Column are 1-based and count Unicode scalars, not bytes.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("messageformat: %d:%d: %s", e.Line, e.Column, e.Message)
}

// RuleError reports malformed CLDR plural-rule text.
type RuleError struct {
	Rule    string
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("messageformat: plural rule %q: %s", e.Rule, e.Message)
}
