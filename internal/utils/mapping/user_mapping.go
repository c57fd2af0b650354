package mapping

import (
	"github.com/SscSPs/cash_dashboard/internal/core/domain"
	"github.com/SscSPs/cash_dashboard/internal/models"
)

// ToModelCredential converts a domain Credential to a model Credential
func ToModelCredential(d domain.Credential) models.Credential {
	return models.Credential{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCredential converts a model Credential to a domain Credential
func ToDomainCredential(m models.Credential) domain.Credential {
	return domain.Credential{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelUserProfile converts a domain UserProfile to a model UserProfile
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	return models.UserProfile{
		UserID:    d.UserID,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      string(d.Role),
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		UserID:    m.UserID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      domain.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
	}
}
