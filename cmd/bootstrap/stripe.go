package bootstrap

import (
	"staybook/internal/infra/payment"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			payment.NewStripeGateway,
			fx.As(new(commands.CheckoutGateway)),
		),
	),
)
