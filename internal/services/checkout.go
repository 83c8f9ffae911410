package services

import (
	"context"
	"strings"
	"sync"
	"time"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/metrics"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/whatsapp"
	"github.com/google/uuid"
)

type CheckoutState string

const (
	StateIdle                   CheckoutState = "idle"
	StateCollectingCustomerData CheckoutState = "collecting_customer_data"
	StateSubmitted              CheckoutState = "submitted"
)

// Checkout is one in-flight checkout session. At most one exists per
// cart; sessions are process-local and vanish on restart, which simply
// drops the shopper back to the idle state with the cart intact.
type Checkout struct {
	ID        string               `json:"id"`
	CartID    string               `json:"cart_id"`
	State     CheckoutState        `json:"state"`
	Customer  *models.CustomerData `json:"customer,omitempty"`
	StartedAt time.Time            `json:"started_at"`
}

// CheckoutService drives the idle → collecting → submitted flow and is
// the single place an order message can be composed from, for both the
// checkout form and the assistant path.
type CheckoutService struct {
	mu       sync.Mutex
	sessions map[string]*Checkout

	cart     *CartService
	composer *whatsapp.Composer
}

func NewCheckoutService(cart *CartService, composer *whatsapp.Composer) *CheckoutService {
	return &CheckoutService{
		sessions: make(map[string]*Checkout),
		cart:     cart,
		composer: composer,
	}
}

func (s *CheckoutService) Begin(ctx context.Context, cartID string) (*Checkout, error) {
	cart, err := s.cart.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, appErrors.BadRequestError("Cannot start checkout with an empty cart")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[cartID]; ok {
		copied := *existing
		return &copied, nil
	}

	session := &Checkout{
		ID:        uuid.NewString(),
		CartID:    cartID,
		State:     StateCollectingCustomerData,
		StartedAt: time.Now().UTC(),
	}
	s.sessions[cartID] = session

	copied := *session

	return &copied, nil
}

func (s *CheckoutService) Submit(ctx context.Context, cartID string, customer models.CustomerData) (*models.OrderMessage, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.City = strings.TrimSpace(customer.City)

	if customer.Name == "" || customer.City == "" {
		return nil, appErrors.ValidationError("Name and city are required")
	}

	s.mu.Lock()
	session, ok := s.sessions[cartID]
	s.mu.Unlock()

	if !ok {
		return nil, appErrors.ConflictError("No checkout in progress for this cart")
	}

	cart, err := s.cart.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, appErrors.BadRequestError("Cannot submit an empty cart")
	}

	message := s.ComposeOrder("checkout", cart.Items, cart.Total, &customer)

	// The order has left the building once the link exists; emptying
	// the cart is best-effort after that point.
	s.cart.Clear(ctx, cartID)

	s.mu.Lock()
	session.State = StateSubmitted
	session.Customer = &customer
	delete(s.sessions, cartID)
	s.mu.Unlock()

	return &message, nil
}

// Abandon drops the session and leaves the cart untouched. Abandoning
// a cart with no session is a no-op.
func (s *CheckoutService) Abandon(cartID string) {
	s.mu.Lock()
	delete(s.sessions, cartID)
	s.mu.Unlock()
}

// State reports the flow state for a cart without mutating anything.
func (s *CheckoutService) State(cartID string) CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[cartID]; ok {
		return StateCollectingCustomerData
	}

	return StateIdle
}

// ComposeOrder renders the receipt and deep link for a set of line
// items. Every order path funnels through here so the message format
// cannot drift between entry points.
func (s *CheckoutService) ComposeOrder(origin string, items []models.LineItem, total float64, customer *models.CustomerData) models.OrderMessage {
	message := s.composer.Compose(items, total, customer)
	metrics.OrderComposed(origin)

	return message
}
