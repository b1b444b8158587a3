// internal/payment/reconciler.go

// Package payment covers the VNPay hand-off: requesting the redirect URL for
// an unpaid order and reconciling the gateway's return parameters with the
// server. The redirect parameters are client-visible and therefore never a
// trust boundary; true payment state always comes from the server.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

// ErrNotPayable rejects a payment-URL request for an order whose payment
// status is anything but Unpaid. No network call is made.
var ErrNotPayable = errors.New("order is not payable")

// ReturnParams are the gateway redirect-back parameters. All three are
// optional; missing values skip reconciliation.
type ReturnParams struct {
	ResponseCode string
	MerchantCode string
	OrderID      string
}

// ParseReturn extracts the VNPay parameters from a return-URL query.
func ParseReturn(query url.Values) ReturnParams {
	return ReturnParams{
		ResponseCode: query.Get("vnp_ResponseCode"),
		MerchantCode: query.Get("vnp_TmnCode"),
		OrderID:      query.Get("vnp_TxnRef"),
	}
}

// Complete reports whether the parameters carry enough to reconcile.
func (p ReturnParams) Complete() bool {
	return p.ResponseCode != "" && p.OrderID != ""
}

// Outcome is a display hint only. "00" shows the success banner; the settled
// payment status is re-fetched from the server afterwards.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

func (p ReturnParams) Outcome() Outcome {
	if !p.Complete() {
		return OutcomeUnknown
	}
	if p.ResponseCode == "00" {
		return OutcomeSuccess
	}
	return OutcomeFailed
}

type reconcileRequest struct {
	ResponseCode string `json:"responseCode"`
	OrderID      string `json:"orderId"`
}

// Reconciler reports a gateway return to the server exactly once per page
// load.
type Reconciler struct {
	api   *api.Client
	log   *logrus.Logger
	fired atomic.Bool
}

func NewReconciler(client *api.Client, log *logrus.Logger) *Reconciler {
	return &Reconciler{api: client, log: log}
}

// Reconcile sends the response code and order id to the server for final
// state application. It reports whether a reconciliation was actually sent:
// incomplete parameters skip it entirely, and a second invocation is a no-op.
// Incomplete parameters do not consume the trigger.
func (r *Reconciler) Reconcile(ctx context.Context, params ReturnParams) (bool, error) {
	if !params.Complete() {
		r.log.WithFields(logrus.Fields{
			"order_id":      params.OrderID,
			"response_code": params.ResponseCode,
		}).Info("Payment return incomplete, reconciliation skipped")
		return false, nil
	}

	if !r.fired.CompareAndSwap(false, true) {
		return false, nil
	}

	err := r.api.Post(ctx, "/api/orders/returnURL", reconcileRequest{
		ResponseCode: params.ResponseCode,
		OrderID:      params.OrderID,
	}, nil)
	if err != nil {
		// The trigger stays consumed: the server saw the attempt or will
		// settle the order from the gateway's server-to-server callback.
		r.log.WithField("order_id", params.OrderID).WithError(err).Warn("Payment reconciliation failed")
		return true, fmt.Errorf("reconcile payment return: %w", err)
	}
	return true, nil
}

// RequestPaymentURL asks the server for the gateway redirect URL for an
// order. Orders that are not in the Unpaid state are rejected locally,
// preventing duplicate payment attempts.
func (r *Reconciler) RequestPaymentURL(ctx context.Context, order *models.Order) (string, error) {
	if order == nil {
		return "", fmt.Errorf("request payment url: %w", ErrNotPayable)
	}
	if !order.PaymentStatus.Payable() {
		return "", fmt.Errorf("order %s is %s: %w", order.ID, order.PaymentStatus, ErrNotPayable)
	}

	var resp models.PaymentURLResponse
	if err := r.api.Post(ctx, "/api/orders/"+order.ID+"/pay", nil, &resp); err != nil {
		return "", fmt.Errorf("request payment url for order %s: %w", order.ID, err)
	}
	return resp.PaymentURL, nil
}
