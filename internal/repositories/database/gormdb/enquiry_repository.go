package gormdb

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormEnquiryRepository struct {
	BaseRepository
}

func newGormEnquiryRepository(db *gorm.DB) portsrepo.EnquiryRepositoryFacade {
	return &GormEnquiryRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EnquiryRepositoryFacade = (*GormEnquiryRepository)(nil)

func issueMatterCode(tx *gorm.DB, enquiry *domain.Enquiry) error {
	year := enquiry.ConversionDate.Year()
	n, err := nextMatterNumber(tx, year)
	if err != nil {
		return err
	}
	code := domain.FormatMatterCode(year, n)
	enquiry.MatterCode = &code
	enquiry.MatterYear = &year
	enquiry.MatterNumber = &n
	return nil
}

// CreateEnquiry allocates the enquiry number (and a matter code when asked)
// and inserts the row in one transaction.
func (r *GormEnquiryRepository) CreateEnquiry(ctx context.Context, enquiry domain.Enquiry, withMatterCode bool) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("create_enquiry", start, err) }(time.Now())

	var saved models.Enquiry
	err = r.inTx(ctx, func(tx *gorm.DB) error {
		n, err := nextEnquiryNumber(tx)
		if err != nil {
			return err
		}
		enquiry.EnquiryNumber = n
		enquiry.EnquiryID = domain.FormatEnquiryID(n)
		enquiry.MatterCode, enquiry.MatterYear, enquiry.MatterNumber = nil, nil, nil

		if withMatterCode && enquiry.ConversionDate != nil {
			if err := issueMatterCode(tx, &enquiry); err != nil {
				return err
			}
		}

		saved = mapping.ToModelEnquiry(enquiry)
		saved.ID = 0
		return tx.Create(&saved).Error
	})
	if err != nil {
		return nil, classifyError("insert enquiry", err)
	}

	result := mapping.ToDomainEnquiry(saved)
	return &result, nil
}

// UpdateEnquiry writes every mutable column of the enquiry. A matter code is
// only issued when the stored row still has none and a stored code is never
// overwritten. Returns nil when the row no longer exists.
func (r *GormEnquiryRepository) UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry, withMatterCode bool) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("update_enquiry", start, err) }(time.Now())

	var saved models.Enquiry
	vanished := false
	err = r.inTx(ctx, func(tx *gorm.DB) error {
		var stored models.Enquiry
		if err := tx.Select("id", "matter_code").Take(&stored, enquiry.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				vanished = true
				return nil
			}
			return err
		}

		enquiry.MatterCode, enquiry.MatterYear, enquiry.MatterNumber = nil, nil, nil
		if withMatterCode && stored.MatterCode == nil && enquiry.ConversionDate != nil {
			if err := issueMatterCode(tx, &enquiry); err != nil {
				return err
			}
		}

		m := mapping.ToModelEnquiry(enquiry)
		res := tx.Model(&models.Enquiry{}).Where("id = ?", m.ID).Updates(map[string]any{
			"date_of_enquiry":   m.DateOfEnquiry,
			"client_name":       m.ClientName,
			"email":             m.Email,
			"phone":             m.Phone,
			"service_requested": m.ServiceRequested,
			"referral_source":   m.ReferralSource,
			"assigned_to":       m.AssignedTo,
			"notes":             m.Notes,
			"urgency_level":     m.UrgencyLevel,
			"current_status":    m.CurrentStatus,
			"estimated_value":   m.EstimatedValue,
			"conversion_date":   m.ConversionDate,
			"matter_code":       gorm.Expr("COALESCE(matter_code, ?)", m.MatterCode),
			"matter_year":       gorm.Expr("COALESCE(matter_year, ?)", m.MatterYear),
			"matter_number":     gorm.Expr("COALESCE(matter_number, ?)", m.MatterNumber),
			"last_updated_at":   m.LastUpdatedAt,
			"last_updated_by":   m.LastUpdatedBy,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			vanished = true
			return nil
		}
		return tx.Take(&saved, m.ID).Error
	})
	if err != nil {
		return nil, classifyError("update enquiry", err)
	}
	if vanished {
		return nil, nil
	}

	result := mapping.ToDomainEnquiry(saved)
	return &result, nil
}

// FindEnquiryByID retrieves an enquiry by its store id.
func (r *GormEnquiryRepository) FindEnquiryByID(ctx context.Context, id int64) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("find_enquiry", start, err) }(time.Now())

	var m models.Enquiry
	if err = r.DB.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, classifyError("find enquiry", err)
	}

	enquiry := mapping.ToDomainEnquiry(m)
	return &enquiry, nil
}

// ListEnquiries retrieves all enquiries in insertion order.
func (r *GormEnquiryRepository) ListEnquiries(ctx context.Context) (_ []domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("list_enquiries", start, err) }(time.Now())

	var ms []models.Enquiry
	if err = r.DB.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, classifyError("list enquiries", err)
	}
	return mapping.ToDomainEnquirySlice(ms), nil
}
