package analytics

const (
	// RedFlagThreshold marks a report as a quality concern.
	RedFlagThreshold = 6.0

	DefaultRedFlagLimit     = 10
	DefaultContributorLimit = 5
	GoalAlignmentLimit      = 15

	// Score bands for goal alignment stacking.
	HighBandFloor = 8.0
	MidBandFloor  = 6.0
)

const (
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)
