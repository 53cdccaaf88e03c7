package carrier

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/pkg/errs"
)

var (
	// ErrDocumentTypeIsRequired is returned when a compliance document lacks a type.
	ErrDocumentTypeIsRequired = errs.NewValueIsRequiredError("documentType")
	// ErrComplianceDocumentIsNotConstructed is returned when using a zero-value document.
	ErrComplianceDocumentIsNotConstructed = errors.New(
		"ComplianceDocument must be created via NewComplianceDocument constructor",
	)
)

// ComplianceDocument is one regulatory document held by a carrier:
// its type (e.g. operator licence), issue date, and expiry date.
// The document content lives in the external document store; the core only
// evaluates the dates.
//
// ComplianceDocument is an immutable value object.
type ComplianceDocument struct {
	docType    string
	issueDate  time.Time
	expiryDate time.Time

	isConstructed bool
}

// NewComplianceDocument creates a compliance document. The type must be
// non-empty and the expiry date must not precede the issue date.
func NewComplianceDocument(docType string, issueDate, expiryDate time.Time) (ComplianceDocument, error) {
	if docType == "" {
		return ComplianceDocument{}, ErrDocumentTypeIsRequired
	}

	if expiryDate.Before(issueDate) {
		return ComplianceDocument{}, errs.NewValueIsInvalidErrorWithCause("expiryDate",
			fmt.Errorf("expiry %s precedes issue %s",
				expiryDate.Format(time.DateOnly), issueDate.Format(time.DateOnly)))
	}

	return ComplianceDocument{
		docType:       docType,
		issueDate:     issueDate,
		expiryDate:    expiryDate,
		isConstructed: true,
	}, nil
}

// Type returns the document type identifier, e.g. "operator_licence".
func (d ComplianceDocument) Type() string {
	return d.docType
}

// IssueDate returns when the document was issued.
func (d ComplianceDocument) IssueDate() time.Time {
	return d.issueDate
}

// ExpiryDate returns when the document expires.
func (d ComplianceDocument) ExpiryDate() time.Time {
	return d.expiryDate
}

// IsExpired reports whether the document has expired as of the given time.
func (d ComplianceDocument) IsExpired(asOf time.Time) bool {
	return d.expiryDate.Before(asOf)
}

// Validate ensures the document was created via NewComplianceDocument.
func (d ComplianceDocument) Validate() error {
	if !d.isConstructed {
		return ErrComplianceDocumentIsNotConstructed
	}
	return nil
}
