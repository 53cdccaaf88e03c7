package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier name is required")
)

// ComplianceDocumentSpec carries the raw fields of one compliance document
// through the application boundary. The domain value object is constructed
// and validated by the handler.
type ComplianceDocumentSpec struct {
	Type       string
	IssueDate  time.Time
	ExpiryDate time.Time
}

// CreateCarrierCommand represents a request to register a new carrier with
// its capability profile and compliance documents.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID         kernel.UUID
	name              string
	regionsOfInterest []string
	fleetTypes        []string
	servicesOffered   []string
	hasWarehousing    bool
	documents         []ComplianceDocumentSpec

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a new carrier.
// Validates that the carrier ID is valid and the name is not empty; the
// capability lists may be empty.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	regionsOfInterest, fleetTypes, servicesOffered []string,
	hasWarehousing bool,
	documents []ComplianceDocumentSpec,
) (CreateCarrierCommand, error) {
	carrierCommand := CreateCarrierCommand{
		regionsOfInterest: regionsOfInterest,
		fleetTypes:        fleetTypes,
		servicesOffered:   servicesOffered,
		hasWarehousing:    hasWarehousing,
		documents:         documents,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrierCommand.setCarrierID(carrierID),
		carrierCommand.setName(name),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return carrierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCarrierCommandIsNotConstructed if validation fails.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the unique identifier for the carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier's trading name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// RegionsOfInterest returns the regions the carrier operates in.
func (c CreateCarrierCommand) RegionsOfInterest() []string {
	return c.regionsOfInterest
}

// FleetTypes returns the vehicle categories the carrier runs.
func (c CreateCarrierCommand) FleetTypes() []string {
	return c.fleetTypes
}

// ServicesOffered returns the carrier's service capabilities.
func (c CreateCarrierCommand) ServicesOffered() []string {
	return c.servicesOffered
}

// HasWarehousing reports whether the carrier offers warehousing facilities.
func (c CreateCarrierCommand) HasWarehousing() bool {
	return c.hasWarehousing
}

// Documents returns the carrier's compliance document specs.
func (c CreateCarrierCommand) Documents() []ComplianceDocumentSpec {
	return c.documents
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}

	c.name = name
	return nil
}
