package components

import (
	repo_impl "slotbook/internal/infra/repository"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repo_impl.NewAppointmentRepository,
		fx.Annotate(
			func(r *repo_impl.AppointmentRepository) *repo_impl.AppointmentRepository { return r },
			fx.As(new(commands.AppointmentRepository)),
			fx.As(new(queries.AppointmentReader)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
