package components

import (
	"lessence-checkout/internal/infra/gateway/paymob"
	"lessence-checkout/internal/infra/loyalty"
	"lessence-checkout/internal/pkg/config"
	"lessence-checkout/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymobClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewSignatureVerifier,
			fx.As(new(commands.SignatureVerifier)),
		),
		fx.Annotate(
			NewLoyaltyClient,
			fx.As(new(commands.LoyaltyService)),
		),
	),
)

func NewPaymobClient(cfg config.Config) *paymob.Client {
	return paymob.NewClient(cfg.Paymob)
}

func NewSignatureVerifier(cfg config.Config) *paymob.SignatureVerifier {
	return paymob.NewSignatureVerifier(cfg.Paymob.HMACSecret)
}

func NewLoyaltyClient(cfg config.Config) *loyalty.Client {
	return loyalty.NewClient(cfg.Loyalty)
}
