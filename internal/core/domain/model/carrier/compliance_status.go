package carrier

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ComplianceStatus is the derived classification of a carrier's regulatory
// documents relative to a point in time. It is computed by the compliance
// evaluator, never stored, and never randomised: identical documents and
// evaluation time always produce the same status.
type ComplianceStatus int

const (
	// ComplianceUnknown represents an invalid or undefined status.
	ComplianceUnknown ComplianceStatus = iota

	// Compliant means every required document is present and none expires
	// within the warning window.
	Compliant

	// Warning means documentation is incomplete evidence rather than a
	// violation: either no documents are on file at all, or the earliest
	// expiry falls within the warning window.
	Warning

	// NonCompliant means a required document type is missing from a
	// non-empty document set, or a document has already expired.
	NonCompliant
)

// getComplianceStatusStrings returns a map of status values to their names.
func getComplianceStatusStrings() map[ComplianceStatus]string {
	return map[ComplianceStatus]string{
		ComplianceUnknown: "unknown",
		Compliant:         "compliant",
		Warning:           "warning",
		NonCompliant:      "non-compliant",
	}
}

// Validate checks that the value is one of the defined compliance statuses.
func (s ComplianceStatus) Validate() error {
	if s == ComplianceUnknown {
		return errs.NewValueIsInvalidErrorWithCause("complianceStatus is invalid",
			fmt.Errorf("%d is not a valid compliance status", s))
	}
	if _, ok := getComplianceStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("complianceStatus is invalid",
			fmt.Errorf("%d is not a valid compliance status", s))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "non-compliant".
func (s ComplianceStatus) String() string {
	if str, ok := getComplianceStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
