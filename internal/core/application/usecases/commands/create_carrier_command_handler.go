package commands

import (
	"context"
	"errors"

	"vintage/internal/core/domain/model/carrier"
	"vintage/internal/pkg/errs"
)

// ErrCarrierAlreadyExists is returned when a carrier with the requested
// name is already registered. Carrier names are the keys items and orders
// reference, so they must stay unique.
var ErrCarrierAlreadyExists = errors.New("carrier already exists")

// CreateCarrierCommandHandler handles the business logic for carrier
// registration. Creates and persists new carrier aggregates with their
// tier rates.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier creation command. Rejects duplicate names,
// then creates and persists the carrier within a transaction.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()

	_, err := carrierRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return ErrCarrierAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	carrierEntity, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name(),
		cmd.TaxSmall(), cmd.TaxMedium(), cmd.TaxBig())
	if err != nil {
		return err
	}

	if err = carrierRepo.Add(ctx, carrierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
