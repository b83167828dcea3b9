package robots

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sudo-init-do/robomart/internal/user"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	// updateAttempts bounds the read-patch-write loop when concurrent
	// writers keep bumping the version.
	updateAttempts = 3
)

// CreateInput is what a robot_owner supplies when listing a robot.
// Ownership, status and counters are assigned by the service.
type CreateInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required"`
	Currency      string   `json:"currency"`
	WalletAddress string   `json:"wallet_address" validate:"required"`
	Services      []string `json:"services" validate:"required,min=1"`
	Endpoint      string   `json:"endpoint" validate:"required"`
}

// Service orchestrates validation, the authorization policy and the
// store for every listing operation.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List returns a page of listings plus the filtered total. Status
// defaults to active; an unknown status is a validation error. Limit is
// clamped to at most 100 entries per page.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Robot, int, error) {
	if f.Status == "" {
		f.Status = StatusActive
	}
	if !ValidStatus(f.Status) {
		return nil, 0, &ValidationError{Field: "status", Reason: "must be active, inactive or maintenance"}
	}
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return s.store.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Robot, error) {
	return s.store.Get(ctx, id)
}

// Create lists a new robot owned by the actor. Only robot owners and
// admins may create; price must be positive; status always starts active.
func (s *Service) Create(ctx context.Context, actor user.Actor, in CreateInput) (*Robot, error) {
	if !Allowed(actor, ActionCreate, nil) {
		return nil, ErrForbidden
	}
	if in.Price <= 0 {
		return nil, &ValidationError{Field: "price", Reason: "must be greater than 0"}
	}

	currency := in.Currency
	if currency == "" {
		currency = "USDC"
	}
	services := in.Services
	if services == nil {
		services = []string{}
	}

	r := &Robot{
		ID:            uuid.New(),
		OwnerID:       actor.ID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Currency:      currency,
		WalletAddress: in.WalletAddress,
		Services:      services,
		Endpoint:      in.Endpoint,
		Status:        StatusActive,
		SuccessRate:   1,
		CreatedAt:     s.now(),
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update applies a patch to an existing listing. Authorization is
// evaluated against the stored owner; patched values are re-validated.
// The write is a version-checked compare-and-swap, re-read and retried
// a bounded number of times when it races with another writer.
func (s *Service) Update(ctx context.Context, actor user.Actor, id uuid.UUID, p Patch) (*Robot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < updateAttempts; attempt++ {
		r, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !Allowed(actor, ActionUpdate, r) {
			return nil, ErrForbidden
		}

		version := r.Version
		p.Apply(r)

		err = s.store.Update(ctx, r, version)
		if errors.Is(err, ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, ErrConflict
}

// Delete removes a listing permanently. Admin only; ownership alone is
// not enough.
func (s *Service) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !Allowed(actor, ActionDelete, nil) {
		return ErrForbidden
	}
	return s.store.Delete(ctx, id)
}

// Metrics returns the usage counters of a listing. No aggregation
// happens here; the execution subsystem keeps the columns current.
func (s *Service) Metrics(ctx context.Context, id uuid.UUID) (*Metrics, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return MetricsOf(r), nil
}
