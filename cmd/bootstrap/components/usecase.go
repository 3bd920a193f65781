package components

import (
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBusinessHours,
)

func NewBusinessHours(cfg config.Config) (schedule.BusinessHours, error) {
	return schedule.NewBusinessHours(
		cfg.Booking.StartHour,
		cfg.Booking.EndHour,
		cfg.Booking.IntervalMinutes,
	)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAppointmentCommands,
	),
)

func NewAppointmentCommands(
	repo commands.AppointmentRepository,
	availability *queries.Availability,
	hours schedule.BusinessHours,
	clk clock.Clock,
	cfg config.Config,
) commands.AppointmentCommands {
	return commands.NewAppointmentCommands(repo, availability, hours, clk, cfg.Booking.SubmitTimeout)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewAvailability,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
	),
)
