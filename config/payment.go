package config

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"schoolmgmt/domain"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// midtransGateway implements domain.PaymentGateway over the Midtrans Snap
// API. A nil gateway (no server key configured) surfaces as
// UpstreamUnavailable at the usecase layer.
type midtransGateway struct {
	client    snap.Client
	serverKey string
}

func NewPaymentGateway(cfg *Config) domain.PaymentGateway {
	if cfg.MidtransServerKey == "" {
		return nil
	}
	env := midtrans.Sandbox
	if cfg.MidtransProduction {
		env = midtrans.Production
	}
	g := &midtransGateway{serverKey: cfg.MidtransServerKey}
	g.client.New(cfg.MidtransServerKey, env)
	return g
}

func (g *midtransGateway) CreateOrder(ctx context.Context, orderID string, amount float64, description string) (*domain.PaymentOrder, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Price: int64(amount),
				Qty:   1,
				Name:  description,
			},
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("midtrans create transaction: %v", err.GetMessage())
	}

	return &domain.PaymentOrder{
		OrderID:     orderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
		Amount:      amount,
	}, nil
}

// VerifySignature checks the SHA-512 notification signature:
// sha512(order_id + status_code + gross_amount + server_key).
func (g *midtransGateway) VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + g.serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
