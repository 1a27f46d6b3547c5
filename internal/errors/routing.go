package errors

var (
	// ErrNoEligibleProcessor means no catalog processor supports the
	// requested payment method. Distinct from "nothing passed strict
	// constraints", which has a defined fallback instead of an error.
	ErrNoEligibleProcessor = &DomainError{
		Code:    "NO_ELIGIBLE_PROCESSOR",
		Message: "no processor supports the requested payment method",
	}

	// ErrInvalidConfig marks a deployment-level configuration problem
	// (missing baseline, missing weights). Requests fail rather than run
	// on silently defaulted rules.
	ErrInvalidConfig = &DomainError{
		Code:    "CONFIG_INVALID",
		Message: "invalid routing configuration",
	}
)
