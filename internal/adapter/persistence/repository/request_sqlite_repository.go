package repository

import (
	"context"
	"fmt"
	"time"

	"plumbing_portal/internal/domain/entities"
	"plumbing_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serviceRequestRow is the flattened sqlite row of a service request.
type serviceRequestRow struct {
	ID                    uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID             string    `gorm:"column:request_id;type:text;not null;index"`
	Timestamp             time.Time `gorm:"column:timestamp;not null"`
	FullName              string    `gorm:"column:full_name;type:text;not null"`
	Email                 string    `gorm:"column:email;type:text;not null"`
	Phone                 string    `gorm:"column:phone;type:text;not null"`
	Address               string    `gorm:"column:address;type:text;not null"`
	Category              string    `gorm:"column:category;type:text;not null"`
	ServiceType           string    `gorm:"column:service_type;type:text;not null"`
	Urgency               string    `gorm:"column:urgency;type:text;not null"`
	Description           string    `gorm:"column:description;type:text;not null"`
	ContactPreference     string    `gorm:"column:contact_preference;type:text;not null"`
	PhotoUploaded         bool      `gorm:"column:photo_uploaded;not null;default:0"`
	PreliminaryPriceRange string    `gorm:"column:preliminary_price_range;type:text;not null"`
}

func (serviceRequestRow) TableName() string {
	return "service_requests"
}

// RequestSQLiteRepository persists service requests in a sqlite table through gorm.
// Rows are only inserted and keyed by an autoincrement id; request_id is indexed but not
// unique, so requests saved in the same second are all kept. Load returns them in
// insertion order.

type RequestSQLiteRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ interfaces.IRequestStore = (*RequestSQLiteRepository)(nil)

// NewRequestSQLiteRepository migrates the service_requests table and returns the repository.
func NewRequestSQLiteRepository(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*RequestSQLiteRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.WithContext(ctx).AutoMigrate(&serviceRequestRow{}); err != nil {
		return nil, fmt.Errorf("migrate service_requests: %w", err)
	}
	return &RequestSQLiteRepository{db: db, logger: logger}, nil
}

func (r *RequestSQLiteRepository) Append(ctx context.Context, req entities.ServiceRequest) error {
	row := toServiceRequestRow(req)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert service request %s: %w", req.RequestID, err)
	}
	r.logger.Debug("[intake][sqlite] inserted", zap.Uint64("id", row.ID), zap.String("request_id", req.RequestID))
	return nil
}

func (r *RequestSQLiteRepository) Load(ctx context.Context) ([]entities.ServiceRequest, error) {
	var rows []serviceRequestRow
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ServiceRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromServiceRequestRow(row))
	}
	return out, nil
}

func toServiceRequestRow(r entities.ServiceRequest) serviceRequestRow {
	return serviceRequestRow{
		RequestID:             r.RequestID,
		Timestamp:             r.Timestamp.UTC(),
		FullName:              r.CustomerInfo.FullName,
		Email:                 r.CustomerInfo.Email,
		Phone:                 r.CustomerInfo.Phone,
		Address:               r.CustomerInfo.Address,
		Category:              string(r.ServiceDetails.Category),
		ServiceType:           r.ServiceDetails.Type,
		Urgency:               string(r.ServiceDetails.Urgency),
		Description:           r.ServiceDetails.Description,
		ContactPreference:     string(r.ServiceDetails.ContactPreference),
		PhotoUploaded:         r.PhotoUploaded,
		PreliminaryPriceRange: r.PreliminaryPriceRange,
	}
}

func fromServiceRequestRow(row serviceRequestRow) entities.ServiceRequest {
	return entities.ServiceRequest{
		CustomerInfo: entities.CustomerInfo{
			FullName: row.FullName,
			Email:    row.Email,
			Phone:    row.Phone,
			Address:  row.Address,
		},
		ServiceDetails: entities.ServiceDetails{
			Category:          entities.Category(row.Category),
			Type:              row.ServiceType,
			Urgency:           entities.Urgency(row.Urgency),
			Description:       row.Description,
			ContactPreference: entities.ContactPreference(row.ContactPreference),
		},
		PhotoUploaded:         row.PhotoUploaded,
		PreliminaryPriceRange: row.PreliminaryPriceRange,
		Timestamp:             row.Timestamp.UTC(),
		RequestID:             row.RequestID,
	}
}
