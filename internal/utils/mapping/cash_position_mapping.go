package mapping

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/models"
)

// ToModelCashPosition converts a domain CashPosition to a model CashPosition.
// An empty sub-account becomes NULL.
func ToModelCashPosition(d domain.CashPosition) models.CashPosition {
	m := models.CashPosition{
		ID:            d.ID,
		ReportDate:    d.ReportDate,
		CompanyID:     d.CompanyID,
		AccountTypeID: d.AccountTypeID,
		Amount:        d.Amount,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
	if d.SubAccountID != "" {
		sub := d.SubAccountID
		m.SubAccountID = &sub
	}
	return m
}

// ToDomainCashPosition converts a model CashPosition to a domain CashPosition
func ToDomainCashPosition(m models.CashPosition) domain.CashPosition {
	d := domain.CashPosition{
		ID:            m.ID,
		ReportDate:    m.ReportDate,
		CompanyID:     m.CompanyID,
		AccountTypeID: m.AccountTypeID,
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
	if m.SubAccountID != nil {
		d.SubAccountID = *m.SubAccountID
	}
	return d
}

// ToDomainCashPositionSlice converts a slice of model CashPositions to domain CashPositions
func ToDomainCashPositionSlice(ms []models.CashPosition) []domain.CashPosition {
	ds := make([]domain.CashPosition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashPosition(m)
	}
	return ds
}
