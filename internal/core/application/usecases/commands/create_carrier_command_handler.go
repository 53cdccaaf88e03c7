package commands

import (
	"context"

	"freight/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler handles the business logic for carrier
// registration. Compliance documents are constructed from their raw specs so
// invalid documents are rejected before anything is persisted.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
// Requires a CarrierUoWFactory for transactional persistence.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier registration command.
func (h CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	documents := make([]carrier.ComplianceDocument, 0, len(cmd.Documents()))
	for _, spec := range cmd.Documents() {
		document, err := carrier.NewComplianceDocument(spec.Type, spec.IssueDate, spec.ExpiryDate)
		if err != nil {
			return err
		}
		documents = append(documents, document)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()
	newCarrier, err := carrier.NewCarrier(
		cmd.CarrierID(),
		cmd.Name(),
		cmd.RegionsOfInterest(),
		cmd.FleetTypes(),
		cmd.ServicesOffered(),
		cmd.HasWarehousing(),
		documents,
	)
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, newCarrier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
