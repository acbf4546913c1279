package usecase

import (
	"context"
	"errors"
	"fmt"
	"plumbing_portal/internal/domain/catalog"
	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/domain/pricing"
	"plumbing_portal/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrMissingRequiredFields    = errors.New("missing required fields")
	ErrUnknownCategory          = errors.New("unknown service category")
	ErrUnknownServiceType       = errors.New("service type not offered in category")
	ErrInvalidUrgency           = errors.New("invalid urgency")
	ErrInvalidContactPreference = errors.New("invalid contact preference")
	ErrStoreNotConfigured       = errors.New("request store not configured")
)

// MissingFieldsMessage is shown inline when a submission fails the presence check.
const MissingFieldsMessage = "Please fill in all required fields (*) and agree to the terms."

// IIntakeUseCase exposes the service request intake operations.
//
//   - Estimate: preliminary price range for a service and urgency (pure).
//   - Submit: presence + catalog checks, pricing, then SaveServiceRequest.
//   - SaveServiceRequest: stamps request id/timestamp and appends to the store.
//   - ListRequests: full store read-back.

type IIntakeUseCase interface {
	Catalog() catalog.Catalog
	Estimate(serviceType string, urgency entities.Urgency) string
	Submit(ctx context.Context, r entities.ServiceRequest, termsAccepted bool) (entities.ServiceRequest, error)
	SaveServiceRequest(ctx context.Context, r entities.ServiceRequest) (string, error)
	ListRequests(ctx context.Context) ([]entities.ServiceRequest, error)
}

type IntakeUseCase struct {
	store     interfaces.IRequestStore
	catalog   catalog.Catalog
	estimator pricing.Estimator
	logger    *zap.Logger
	now       func() time.Time
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(store interfaces.IRequestStore, cat catalog.Catalog, estimator pricing.Estimator, logger *zap.Logger) *IntakeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeUseCase{
		store:     store,
		catalog:   cat,
		estimator: estimator,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used to stamp saved requests.
func (u *IntakeUseCase) WithClock(now func() time.Time) *IntakeUseCase {
	u.now = now
	return u
}

func (u *IntakeUseCase) Catalog() catalog.Catalog {
	return u.catalog
}

func (u *IntakeUseCase) Estimate(serviceType string, urgency entities.Urgency) string {
	return u.estimator.EstimatePriceRange(serviceType, urgency)
}

func (u *IntakeUseCase) Submit(ctx context.Context, r entities.ServiceRequest, termsAccepted bool) (entities.ServiceRequest, error) {
	if missing := missingFields(r, termsAccepted); len(missing) > 0 {
		u.logger.Info("[intake][usecase] submission rejected", zap.Strings("missing", missing))
		return entities.ServiceRequest{}, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	if r.ServiceDetails.Urgency == "" {
		r.ServiceDetails.Urgency = entities.DefaultUrgency
	}
	if r.ServiceDetails.ContactPreference == "" {
		r.ServiceDetails.ContactPreference = entities.ContactAnytime
	}
	if err := u.checkSelection(r.ServiceDetails); err != nil {
		u.logger.Info("[intake][usecase] submission rejected",
			zap.String("category", string(r.ServiceDetails.Category)),
			zap.String("type", r.ServiceDetails.Type),
			zap.Error(err),
		)
		return entities.ServiceRequest{}, err
	}

	r.PreliminaryPriceRange = u.Estimate(r.ServiceDetails.Type, r.ServiceDetails.Urgency)

	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return saved, nil
}

func (u *IntakeUseCase) SaveServiceRequest(ctx context.Context, r entities.ServiceRequest) (string, error) {
	saved, err := u.save(ctx, r)
	if err != nil {
		return "", err
	}
	return saved.RequestID, nil
}

func (u *IntakeUseCase) save(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
	if u.store == nil {
		return entities.ServiceRequest{}, ErrStoreNotConfigured
	}

	stamped := r.Stamp(u.now())
	if err := u.store.Append(ctx, stamped); err != nil {
		u.logger.Error("[intake][usecase] store append failed",
			zap.String("request_id", stamped.RequestID),
			zap.Error(err),
		)
		return entities.ServiceRequest{}, err
	}

	u.logger.Info("[intake][usecase] request saved",
		zap.String("request_id", stamped.RequestID),
		zap.String("category", string(stamped.ServiceDetails.Category)),
		zap.String("type", stamped.ServiceDetails.Type),
		zap.String("price_range", stamped.PreliminaryPriceRange),
		zap.Bool("photo_uploaded", stamped.PhotoUploaded),
	)
	return stamped, nil
}

func (u *IntakeUseCase) ListRequests(ctx context.Context) ([]entities.ServiceRequest, error) {
	if u.store == nil {
		return nil, ErrStoreNotConfigured
	}
	return u.store.Load(ctx)
}

func (u *IntakeUseCase) checkSelection(d entities.ServiceDetails) error {
	if !u.catalog.HasCategory(d.Category) {
		return ErrUnknownCategory
	}
	if !u.catalog.Contains(d.Category, d.Type) {
		return ErrUnknownServiceType
	}
	if !u.catalog.HasUrgency(d.Urgency) {
		return ErrInvalidUrgency
	}
	if !u.catalog.HasContactPreference(d.ContactPreference) {
		return ErrInvalidContactPreference
	}
	return nil
}

// missingFields lists the required inputs that are blank. Only presence is checked;
// email and phone formats are accepted as typed.
func missingFields(r entities.ServiceRequest, termsAccepted bool) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"full_name", r.CustomerInfo.FullName},
		{"email", r.CustomerInfo.Email},
		{"phone", r.CustomerInfo.Phone},
		{"address", r.CustomerInfo.Address},
		{"category", string(r.ServiceDetails.Category)},
		{"type", r.ServiceDetails.Type},
		{"description", r.ServiceDetails.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !termsAccepted {
		missing = append(missing, "agree_terms")
	}
	return missing
}
