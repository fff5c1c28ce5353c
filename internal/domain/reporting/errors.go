package reporting

import "errors"

var (
	ErrScoreOutOfRange  = errors.New("override score must be between 0 and 10")
	ErrReasoningMissing = errors.New("override reasoning must not be empty")
	ErrNotDirectManager = errors.New("only the employee's direct manager may override")
)
