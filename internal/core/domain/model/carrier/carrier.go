package carrier

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier represents an external haulage operator eligible to be assigned
// transport jobs. It is an aggregate root owned by the carrier-onboarding
// process; the assignment core reads carriers but never mutates them.
//
// Key attributes for matching:
//   - regionsOfInterest: region identifiers the carrier serves
//   - fleetTypes: vehicle/trailer categories it operates
//   - servicesOffered: capabilities such as road freight
//   - hasWarehousing: whether the carrier offers warehousing facilities
//   - complianceDocuments: regulatory documents with issue/expiry dates,
//     evaluated into a compliance status at ranking time
//
// Region, fleet, and service entries are free text; matching compares them
// by case-insensitive substring, which is the intended heuristic.
type Carrier struct {
	// id uniquely identifies the carrier
	id kernel.UUID
	// name is the trading name of the carrier
	name string
	// regionsOfInterest are the region identifiers the carrier covers
	regionsOfInterest []string
	// fleetTypes are the vehicle/trailer categories the carrier operates
	fleetTypes []string
	// servicesOffered are the carrier's declared capabilities
	servicesOffered []string
	// hasWarehousing indicates warehousing facilities are available
	hasWarehousing bool
	// complianceDocuments are the carrier's regulatory documents
	complianceDocuments []ComplianceDocument
	// guard ensures the carrier was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrier creates a new Carrier with the specified attributes.
// The id must be a valid UUID and the name non-empty; every compliance
// document must have been constructed through NewComplianceDocument.
// The string sets may be empty; an empty set simply never matches.
func NewCarrier(
	id kernel.UUID,
	name string,
	regionsOfInterest []string,
	fleetTypes []string,
	servicesOffered []string,
	hasWarehousing bool,
	complianceDocuments []ComplianceDocument,
) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setComplianceDocuments(complianceDocuments),
	); err != nil {
		return nil, err
	}

	c.regionsOfInterest = append([]string(nil), regionsOfInterest...)
	c.fleetTypes = append([]string(nil), fleetTypes...)
	c.servicesOffered = append([]string(nil), servicesOffered...)
	c.hasWarehousing = hasWarehousing

	return c, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistent storage.
// It applies the same validation as NewCarrier; rows that no longer satisfy
// the aggregate's invariants are rejected at the boundary.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	regionsOfInterest []string,
	fleetTypes []string,
	servicesOffered []string,
	hasWarehousing bool,
	complianceDocuments []ComplianceDocument,
) (*Carrier, error) {
	return NewCarrier(id, name, regionsOfInterest, fleetTypes, servicesOffered,
		hasWarehousing, complianceDocuments)
}

// Validate ensures the Carrier instance was created through a factory function.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's trading name.
func (c *Carrier) Name() string {
	return c.name
}

// RegionsOfInterest returns the region identifiers the carrier covers.
func (c *Carrier) RegionsOfInterest() []string {
	return append([]string(nil), c.regionsOfInterest...)
}

// FleetTypes returns the vehicle/trailer categories the carrier operates.
func (c *Carrier) FleetTypes() []string {
	return append([]string(nil), c.fleetTypes...)
}

// ServicesOffered returns the carrier's declared capabilities.
func (c *Carrier) ServicesOffered() []string {
	return append([]string(nil), c.servicesOffered...)
}

// HasWarehousing reports whether the carrier offers warehousing facilities.
func (c *Carrier) HasWarehousing() bool {
	return c.hasWarehousing
}

// ComplianceDocuments returns the carrier's regulatory documents in their
// stored order.
func (c *Carrier) ComplianceDocuments() []ComplianceDocument {
	return append([]ComplianceDocument(nil), c.complianceDocuments...)
}

// setID validates and sets the carrier's unique identifier.
func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the carrier's trading name.
func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setComplianceDocuments validates and sets the document collection.
func (c *Carrier) setComplianceDocuments(documents []ComplianceDocument) error {
	for _, doc := range documents {
		if err := doc.Validate(); err != nil {
			return err
		}
	}
	c.complianceDocuments = append([]ComplianceDocument(nil), documents...)
	return nil
}
