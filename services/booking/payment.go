package booking

import (
	"context"
	"fmt"

	"voyago/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway is the port to the external payment processor. The server
// only stages and verifies charges; capture happens on the client against the
// intent's client secret, so a retried confirmation can never charge twice.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, paymentIntentID string) (*models.PaymentIntent, error)
}

// Metadata keys carried on every intent so a confirmation webhook can be
// resolved back to its (trip, resource) pair without server-side state.
const (
	metaTripID       = "trip_id"
	metaResourceType = "resource_type"
	metaResourceID   = "resource_id"
	metaStartDate    = "start_date"
	metaEndDate      = "end_date"
)

// StripeGateway implements PaymentGateway against the Stripe API. The global
// stripe.Key is set in main from config.
type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metaTripID, req.TripID)
	params.AddMetadata(metaResourceType, string(req.ResourceType))
	params.AddMetadata(metaResourceID, req.ResourceID)
	if req.StartDate != "" {
		params.AddMetadata(metaStartDate, req.StartDate)
	}
	if req.EndDate != "" {
		params.AddMetadata(metaEndDate, req.EndDate)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}
	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, paymentIntentID string) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent %s retrieval failed: %w", paymentIntentID, err)
	}
	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *models.PaymentIntent {
	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}
