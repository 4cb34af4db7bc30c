package contest_service

// handles for the test package, not part of the api
var (
	ValidateContestInput = validateContestInput
	ApplyInput           = applyInput
)
