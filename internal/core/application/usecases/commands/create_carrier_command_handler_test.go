package commands_test

import (
	"errors"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	docs := []commands.ComplianceDocumentSpec{
		{Type: "operator_licence", IssueDate: time.Now().AddDate(-1, 0, 0), ExpiryDate: time.Now().AddDate(1, 0, 0)},
	}
	cmd, _ := commands.NewCreateCarrierCommand(id, "Acme Haulage",
		[]string{"Manchester"}, []string{"Curtain-side"}, []string{"Road Freight"}, true, docs)

	repo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCarrierCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCarrierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCarrierCommand{} // not constructed properly
	factory := new(MockCarrierUoWFactory)
	h := commands.NewCreateCarrierCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateCarrierCommandHandler_Handle_InvalidDocument(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	docs := []commands.ComplianceDocumentSpec{
		// expiry before issue
		{Type: "operator_licence", IssueDate: time.Now(), ExpiryDate: time.Now().AddDate(-1, 0, 0)},
	}
	cmd, err := commands.NewCreateCarrierCommand(id, "Acme", nil, nil, nil, false, docs)
	require.NoError(t, err)

	// Document construction fails before any transaction is started.
	factory := new(MockCarrierUoWFactory)
	h := commands.NewCreateCarrierCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCarrierCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateCarrierCommand(id, "Acme", nil, nil, nil, false, nil)

	repo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCarrierCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
