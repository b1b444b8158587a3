// internal/checkout/orchestrator.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/cart"
	"github.com/Thangttq233/FYP2025-FE/internal/i18n"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

// State is the orchestrator's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSubmitting
	StateSucceeded
	StateFailed
	// StateRedirectToCart is the outcome of loading with an empty cart. It is
	// not an error: the caller navigates back to the cart view.
	StateRedirectToCart
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StateSubmitting:
		return "Submitting"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	case StateRedirectToCart:
		return "RedirectToCart"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	// ErrSubmitInFlight drops a submit while another one is in flight.
	ErrSubmitInFlight = errors.New("checkout submit already in flight")

	// ErrNotReady rejects a submit before Load, or after the orchestrator has
	// already settled.
	ErrNotReady = errors.New("checkout is not ready to submit")
)

// Form is the shipping information collected at checkout.
type Form struct {
	ShippingAddress string `validate:"required"`
	PhoneNumber     string `validate:"required"`
	CustomerNotes   string
}

// Result is what the caller acts on after Load or Submit. Navigation stays
// with the caller: the orchestrator only signals outcomes.
type Result struct {
	State       State
	OrderID     string
	Reason      string
	FieldErrors map[string]string
}

var validate = validator.New()

// Orchestrator drives the checkout flow:
// Loading -> Ready -> Submitting -> {Succeeded, Failed}.
type Orchestrator struct {
	carts *cart.Synchronizer
	api   *api.Client
	log   *logrus.Logger
	lang  string

	mu    sync.Mutex
	state State
}

func NewOrchestrator(carts *cart.Synchronizer, client *api.Client, log *logrus.Logger, lang string) *Orchestrator {
	return &Orchestrator{
		carts: carts,
		api:   client,
		log:   log,
		lang:  lang,
		state: StateLoading,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Load fetches the authoritative cart once on entry. An empty cart yields
// RedirectToCart regardless of how the user navigated here.
func (o *Orchestrator) Load(ctx context.Context) (Result, error) {
	current, err := o.carts.Refresh(ctx)
	if err != nil {
		return Result{State: StateLoading}, fmt.Errorf("load checkout cart: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if current.Empty() {
		o.state = StateRedirectToCart
	} else {
		o.state = StateReady
	}
	return Result{State: o.state}, nil
}

// Submit validates the form and creates the order. Validation failures keep
// the state at Ready with field-level errors and never touch the network.
// Submission is single-flight; a concurrent submit returns ErrSubmitInFlight.
func (o *Orchestrator) Submit(ctx context.Context, form Form) (Result, error) {
	o.mu.Lock()
	switch o.state {
	case StateSubmitting:
		o.mu.Unlock()
		return Result{State: StateSubmitting}, ErrSubmitInFlight
	case StateReady, StateFailed:
		// A failed checkout stays re-submittable.
	default:
		state := o.state
		o.mu.Unlock()
		return Result{State: state}, ErrNotReady
	}

	if fieldErrors := o.validateForm(form); len(fieldErrors) > 0 {
		o.state = StateReady
		result := Result{State: StateReady, FieldErrors: fieldErrors}
		o.mu.Unlock()
		return result, nil
	}

	o.state = StateSubmitting
	o.mu.Unlock()

	var order models.Order
	err := o.api.Post(ctx, "/api/orders/create", models.CreateOrderRequest{
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		PhoneNumber:     strings.TrimSpace(form.PhoneNumber),
		CustomerNotes:   strings.TrimSpace(form.CustomerNotes),
	}, &order)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.state = StateFailed
		reason := api.ServerMessage(err)
		if reason == "" {
			reason = i18n.T(o.lang, i18n.KeyErrorGeneric)
		}
		o.log.WithError(err).Warn("Order creation failed")
		return Result{State: StateFailed, Reason: reason}, err
	}

	o.state = StateSucceeded
	return Result{State: StateSucceeded, OrderID: order.ID}, nil
}

// validateForm checks required fields locally. Whitespace-only values count
// as blank.
func (o *Orchestrator) validateForm(form Form) map[string]string {
	trimmed := Form{
		ShippingAddress: strings.TrimSpace(form.ShippingAddress),
		PhoneNumber:     strings.TrimSpace(form.PhoneNumber),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			field := fieldLabel(e.Field())
			fieldErrors[field] = o.validationMessage(e, field)
		}
	}
	return fieldErrors
}

func (o *Orchestrator) validationMessage(e validator.FieldError, field string) string {
	switch e.Tag() {
	case "required":
		return i18n.T(o.lang, i18n.KeyValidationRequired, field)
	default:
		return i18n.T(o.lang, i18n.KeyValidationInvalid, field)
	}
}

func fieldLabel(field string) string {
	switch field {
	case "ShippingAddress":
		return "shippingAddress"
	case "PhoneNumber":
		return "phoneNumber"
	case "CustomerNotes":
		return "customerNotes"
	}
	return strings.ToLower(field)
}
