package paymob

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"lessence-checkout/internal/pkg/config"
	"lessence-checkout/internal/pkg/errs"
	"lessence-checkout/internal/usecase/shared"
)

var ErrIntentionRejected = errs.New("payment gateway rejected the intention")

// Client creates payment intentions against Paymob's NextGen API. The
// secret key authenticates as a Token header; the public key is only
// handed back to browsers for the embedded checkout widget.
type Client struct {
	cfg        config.PaymobConfig
	httpClient *http.Client
}

func NewClient(cfg config.PaymobConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Intention is what the storefront needs to open the payment widget.
type Intention struct {
	ClientSecret string
	PublicKey    string
}

type intentionRequest struct {
	Amount         int64       `json:"amount"`
	Currency       string      `json:"currency"`
	PaymentMethods []int       `json:"payment_methods"`
	BillingData    billingData `json:"billing_data"`
	Extras         Extras      `json:"extras"`
}

type billingData struct {
	Apartment      string `json:"apartment"`
	Email          string `json:"email"`
	Floor          string `json:"floor"`
	FirstName      string `json:"first_name"`
	Street         string `json:"street"`
	Building       string `json:"building"`
	PhoneNumber    string `json:"phone_number"`
	ShippingMethod string `json:"shipping_method"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	Country        string `json:"country"`
	LastName       string `json:"last_name"`
	State          string `json:"state"`
}

type intentionResponse struct {
	ClientSecret string `json:"client_secret"`
	Detail       string `json:"detail"`
}

func (c *Client) CreateIntention(ctx context.Context, amountCents int64, meta CheckoutMetadata) (*Intention, error) {
	extras, err := EncodeExtras(meta)
	if err != nil {
		return nil, err
	}

	reqBody := intentionRequest{
		Amount:         amountCents,
		Currency:       "EGP",
		PaymentMethods: []int{c.cfg.IntegrationID},
		BillingData:    newBillingData(meta.Address),
		Extras:         extras,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode intention request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/intention/", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build intention request")
	}
	req.Header.Set("Authorization", "Token "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "intention request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read intention response")
	}

	var respBody intentionResponse
	if err := json.Unmarshal(body, &respBody); err != nil {
		return nil, errs.Wrap(err, "failed to decode intention response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if respBody.Detail != "" {
			return nil, errs.Mark(errs.Newf("gateway error: %s", respBody.Detail), ErrIntentionRejected)
		}
		return nil, errs.Mark(errs.Newf("gateway returned status %d", resp.StatusCode), ErrIntentionRejected)
	}

	return &Intention{
		ClientSecret: respBody.ClientSecret,
		PublicKey:    c.cfg.PublicKey,
	}, nil
}

// newBillingData fills the gateway's mandatory fields, substituting "NA"
// where the storefront address has no equivalent.
func newBillingData(addr shared.AddressInput) billingData {
	first, last := splitName(addr.FullName)

	street := addr.Line1
	if street == "" {
		street = "NA"
	}
	city := addr.City
	if city == "" {
		city = "Cairo"
	}
	state := addr.State
	if state == "" {
		state = "Cairo"
	}
	postal := addr.PostalCode
	if postal == "" {
		postal = "NA"
	}
	email := addr.Email
	if email == "" {
		email = "customer@lessence.com"
	}
	phone := addr.Phone
	if phone == "" {
		phone = "+201000000000"
	}

	return billingData{
		Apartment:      "NA",
		Email:          email,
		Floor:          "NA",
		FirstName:      first,
		Street:         street,
		Building:       "NA",
		PhoneNumber:    phone,
		ShippingMethod: "NA",
		PostalCode:     postal,
		City:           city,
		Country:        "EG",
		LastName:       last,
		State:          state,
	}
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch {
	case len(parts) == 0:
		return "Customer", "Customer"
	case len(parts) == 1:
		return parts[0], "Customer"
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
