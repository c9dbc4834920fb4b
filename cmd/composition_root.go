package cmd

import (
	"jobmatch/internal/adapters/out/postgres"
	"jobmatch/internal/core/application/usecases/commands"
	"jobmatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateContractorCommandHandler() commands.CreateContractorCommandHandler {
	var f commands.ContractorUoWFactory = FuncContractorUoWFactory(func() commands.ContractorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContractorCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignContractorCommandHandler() commands.AssignContractorCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignContractorCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteJobCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllContractorsQueryHandler() queries.GetAllContractorsQueryHandler {
	return queries.NewGetAllContractorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenJobsQueryHandler() queries.GetOpenJobsQueryHandler {
	return queries.NewGetOpenJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRankedCandidatesQueryHandler() queries.GetRankedCandidatesQueryHandler {
	return queries.NewGetRankedCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContractorScheduleQueryHandler() queries.GetContractorScheduleQueryHandler {
	return queries.NewGetContractorScheduleQueryHandler(c.gormDB)
}

type FuncContractorUoWFactory func() commands.ContractorUoW

func (f FuncContractorUoWFactory) Create() commands.ContractorUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
