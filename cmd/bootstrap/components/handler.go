package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewAvailabilityHandler,
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
