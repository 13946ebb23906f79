package backup

import "github.com/bnema/dbs3/internal/domain"

// Evaluate decides whether a destructive restore may proceed. It is allowed
// in development, or anywhere when forced.
func Evaluate(isDevelopment, force bool) domain.SafetyDecision {
	switch {
	case isDevelopment:
		return domain.SafetyDecision{Allowed: true, Reason: domain.SafetyReasonDevelopment}
	case force:
		return domain.SafetyDecision{Allowed: true, Reason: domain.SafetyReasonForced}
	default:
		return domain.SafetyDecision{Allowed: false, Reason: domain.SafetyReasonNotDevelopmentEnv}
	}
}

// RequiresConfirmation reports whether the user must be asked first.
func RequiresConfirmation(autoConfirm bool) bool {
	return !autoConfirm
}
