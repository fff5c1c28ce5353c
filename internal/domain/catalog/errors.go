package catalog

import "errors"

var (
	ErrWeightsNotHundred  = errors.New("criteria weights must sum to exactly 100")
	ErrWeightOutOfRange   = errors.New("criterion weight must be between 1 and 100")
	ErrDuplicateCriterion = errors.New("criterion names must be unique within a goal")
	ErrNoCriteria         = errors.New("a goal requires at least one criterion")
	ErrDuplicateAssignee  = errors.New("project assignees must be unique by id")
	ErrUnknownFrequency   = errors.New("unknown report frequency")
)
