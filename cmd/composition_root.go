package cmd

import (
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCarrierMatcher() services.CarrierMatcher {
	evaluator := services.NewComplianceEvaluator(nil, c.config.ComplianceWarningWindow)
	return services.NewCarrierMatcher(evaluator)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateCarrierCommandHandler() commands.AllocateCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateCarrierCommandHandler(f, c.CreateCarrierMatcher(),
		services.NewAssignmentCoordinator())
}

func (c *CompositionRoot) CreateChangeJobStatusCommandHandler() commands.ChangeJobStatusCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeJobStatusCommandHandler(f, c.config.ArchiveDelay)
}

func (c *CompositionRoot) CreateRecordProofOfDeliveryCommandHandler() commands.RecordProofOfDeliveryCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordProofOfDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveDueJobsCommandHandler() commands.ArchiveDueJobsCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveDueJobsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveJobsQueryHandler() queries.GetActiveJobsQueryHandler {
	return queries.NewGetActiveJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMatchCarriersQueryHandler() queries.MatchCarriersQueryHandler {
	// Matching reads through the domain repositories; a unit of work without
	// an open transaction serves them over the root connection.
	uow := c.uowFactory.Create()
	return queries.NewMatchCarriersQueryHandler(uow.JobRepository(), uow.CarrierRepository(),
		c.CreateCarrierMatcher())
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
