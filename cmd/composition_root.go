package cmd

import (
	"log/slog"

	httpin "jobboard/internal/adapters/in/http"
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/ports"
	"jobboard/internal/schedule"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     ports.TokenIssuer
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, tokens ports.TokenIssuer, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		logger:     logger,
	}
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() *commands.CreateJobCommandHandler {
	h := commands.NewCreateJobCommandHandler(c.jobUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() *commands.UpdateJobCommandHandler {
	h := commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() *commands.DeleteJobCommandHandler {
	h := commands.NewDeleteJobCommandHandler(c.jobUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCloseExpiredJobsCommandHandler() *commands.CloseExpiredJobsCommandHandler {
	h := commands.NewCloseExpiredJobsCommandHandler(c.jobUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSignupUserCommandHandler() *commands.SignupUserCommandHandler {
	h := commands.NewSignupUserCommandHandler(c.userUoWFactory(), c.tokens, c.cfg.BcryptCost)
	return &h
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() *commands.LoginUserCommandHandler {
	h := commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.tokens)
	return &h
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobByIDQueryHandler() queries.GetJobByIDQueryHandler {
	return queries.NewGetJobByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobsRouter() *httpin.JobsRouter {
	return httpin.NewJobsRouter(httpin.JobsHandlers{
		List:   c.CreateGetAllJobsQueryHandler(),
		Get:    c.CreateGetJobByIDQueryHandler(),
		Create: c.CreateCreateJobCommandHandler(),
		Update: c.CreateUpdateJobCommandHandler(),
		Delete: c.CreateDeleteJobCommandHandler(),
	})
}

func (c *CompositionRoot) CreateUsersRouter() *httpin.UsersRouter {
	return httpin.NewUsersRouter(c.CreateSignupUserCommandHandler(), c.CreateLoginUserCommandHandler())
}

// CreateDispatcherConfig assembles the dispatcher around the given OpenAPI 3
// document.
func (c *CompositionRoot) CreateDispatcherConfig(openAPI3JSON []byte) httpin.DispatcherConfig {
	return httpin.DispatcherConfig{
		Jobs:         c.CreateJobsRouter(),
		Users:        c.CreateUsersRouter(),
		Docs:         httpin.NewDocsRouter(openAPI3JSON),
		AllowOrigins: c.cfg.CORSAllowOrigins,
		BodyLimit:    c.cfg.BodyLimit,
		Logger:       c.logger,
	}
}

func (c *CompositionRoot) CreateExpiredJobsTask() (*schedule.ExpiredJobsTask, error) {
	return schedule.NewExpiredJobsTask(c.CreateCloseExpiredJobsCommandHandler(), c.cfg.ExpireJobsSchedule, c.logger)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
