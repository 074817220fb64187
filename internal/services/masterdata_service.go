package services

import (
	"fmt"
	"strings"

	"github.com/streamline-live/streamline-backend/internal/dto"
	"github.com/streamline-live/streamline-backend/internal/models"
	"gorm.io/gorm"
)

// MasterDataService serves the read-only lookups the admin forms populate
// their dropdowns from.
type MasterDataService struct {
	db *gorm.DB
}

func NewMasterDataService(db *gorm.DB) *MasterDataService {
	return &MasterDataService{db: db}
}

// ListHosts returns every HOST user, alphabetic by display name.
func (s *MasterDataService) ListHosts() ([]dto.HostSummary, error) {
	var users []models.User
	err := s.db.
		Where("role = ?", models.RoleHost).
		Order("display_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hosts: %w", err)
	}

	hosts := make([]dto.HostSummary, len(users))
	for i, u := range users {
		hosts[i] = dto.HostSummary{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
		}
	}
	return hosts, nil
}

// ListProducts returns the catalog, alphabetic by name. When search is
// non-empty it matches a case-insensitive substring of sku or name.
func (s *MasterDataService) ListProducts(search string) ([]models.Product, error) {
	q := s.db.Model(&models.Product{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(sku) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListVouchers returns active vouchers only, alphabetic by code.
func (s *MasterDataService) ListVouchers() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := s.db.
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&vouchers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return vouchers, nil
}
