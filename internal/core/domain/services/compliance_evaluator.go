package services

import (
	"time"

	"freight/internal/core/domain/model/carrier"
)

// DefaultWarningWindow is how close to expiry a document may be before the
// carrier's status degrades to warning. Product has not confirmed the exact
// figure; it is configurable per evaluator.
const DefaultWarningWindow = 30 * 24 * time.Hour

// DefaultRequiredDocumentTypes returns the document types a UK road-freight
// carrier is expected to hold.
func DefaultRequiredDocumentTypes() []string {
	return []string{
		"operator_licence",
		"motor_insurance",
		"goods_in_transit",
	}
}

// ComplianceEvaluator derives a carrier's compliance status from its
// document set as of a given timestamp. The evaluation is deterministic and
// side-effect-free: the same documents and timestamp always yield the same
// status.
//
// Classification rules:
//   - No documents at all: warning. Absence of data is not proof of
//     violation, so an undocumented carrier is flagged rather than blocked.
//   - A required document type missing from a non-empty set, or any present
//     document already expired: non-compliant.
//   - Earliest expiry within the warning window of the evaluation time:
//     warning.
//   - Otherwise: compliant.
type ComplianceEvaluator struct {
	requiredTypes []string
	warningWindow time.Duration
}

// NewComplianceEvaluator creates an evaluator. A nil requiredTypes slice
// selects DefaultRequiredDocumentTypes; a non-positive warningWindow selects
// DefaultWarningWindow. Pass an explicit empty slice to disable the
// required-type check.
func NewComplianceEvaluator(requiredTypes []string, warningWindow time.Duration) ComplianceEvaluator {
	if requiredTypes == nil {
		requiredTypes = DefaultRequiredDocumentTypes()
	}

	if warningWindow <= 0 {
		warningWindow = DefaultWarningWindow
	}

	return ComplianceEvaluator{
		requiredTypes: append([]string(nil), requiredTypes...),
		warningWindow: warningWindow,
	}
}

// Evaluate classifies the document set as of the given timestamp.
func (e ComplianceEvaluator) Evaluate(
	documents []carrier.ComplianceDocument, asOf time.Time,
) carrier.ComplianceStatus {
	if len(documents) == 0 {
		return carrier.Warning
	}

	for _, required := range e.requiredTypes {
		if !containsDocumentType(documents, required) {
			return carrier.NonCompliant
		}
	}

	earliestExpiry := documents[0].ExpiryDate()
	for _, doc := range documents {
		if doc.IsExpired(asOf) {
			return carrier.NonCompliant
		}

		if doc.ExpiryDate().Before(earliestExpiry) {
			earliestExpiry = doc.ExpiryDate()
		}
	}

	if !earliestExpiry.After(asOf.Add(e.warningWindow)) {
		return carrier.Warning
	}

	return carrier.Compliant
}

// containsDocumentType reports whether any document carries the required
// type, compared after text normalization so "Operator Licence" and
// "operator_licence" are the same type.
func containsDocumentType(documents []carrier.ComplianceDocument, required string) bool {
	for _, doc := range documents {
		if normalizeText(doc.Type()) == normalizeText(required) {
			return true
		}
	}
	return false
}
