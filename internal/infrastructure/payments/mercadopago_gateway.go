package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"faturas/internal/logger"
	"faturas/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway opens payments at Mercado Pago for invoice payment
// intents. Mock mode (PAYMENT_GATEWAY_MOCK) short-circuits the SDK so local
// environments do not need PSP credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := logger.WithComponent("mercadopago")

	if isPaymentGatewayMockEnabled() {
		log.Info().Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, amountCents int64, description, externalReference string) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":                 id,
			"status":             "pending",
			"description":        description,
			"external_reference": externalReference,
			"transaction_amount": float64(amountCents) / 100,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return "", "", nil, err
		}
		g.log.Info().Str("psp_payment_id", id).Msg("mock payment created")
		return id, "pending", raw, nil
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: float64(amountCents) / 100,
		Description:       description,
		ExternalReference: externalReference,
		PaymentMethodID:   "multibanco",
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Str("external_reference", externalReference).Msg("sdk create failed")
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	g.log.Info().
		Int("psp_payment_id", resp.ID).
		Str("psp_status", resp.Status).
		Msg("payment created")
	return fmt.Sprintf("%d", resp.ID), resp.Status, raw, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
