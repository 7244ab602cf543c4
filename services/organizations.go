package services

import (
	"errors"
	"strings"
	"time"

	"github.com/orgchathq/orgchat-api/models"
	"gorm.io/gorm"
)

// OrganizationsService manages organizations and their membership lists
type OrganizationsService struct {
	DB *gorm.DB
}

// Create creates an organization owned by the given user. The organization
// and its OWNER membership are created in one transaction, so there is never
// an organization without exactly one owner member.
func (s *OrganizationsService) Create(ownerID uint64, name string) (*models.Organization, error) {

	// Reject empty or whitespace-only names
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	// Create the organization together with its owner membership
	org := models.Organization{
		Name:        name,
		OwnerID:     ownerID,
		CreatedDate: time.Now(),
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		member := models.Member{
			UserID:         ownerID,
			OrganizationID: org.ID,
			Role:           models.RoleOwner,
			CreatedDate:    time.Now(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &org, nil

}

// GetWithMembers gets an organization with its owner and full member list,
// including the user record behind each membership
func (s *OrganizationsService) GetWithMembers(orgID uint64) (*models.Organization, error) {
	var org models.Organization
	err := s.DB.
		Preload("Owner").
		Preload("Members.User").
		First(&org, orgID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// ListForUser returns every membership of the user joined to its
// organization, so callers can see their role in each
func (s *OrganizationsService) ListForUser(userID uint64) ([]*models.Member, error) {
	var members []*models.Member
	err := s.DB.
		Preload("Organization").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&members).
		Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes an organization and everything it owns: messages, chat
// access rows, chat rooms, and memberships, in a single transaction
func (s *OrganizationsService) Delete(orgID uint64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		roomIDs := tx.
			Model(&models.ChatRoom{}).
			Select("id").
			Where("organization_id = ?", orgID)
		if err := tx.Where("chat_room_id IN (?)", roomIDs).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_room_id IN (?)", roomIDs).Delete(&models.ChatAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", orgID).Delete(&models.ChatRoom{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", orgID).Delete(&models.Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Organization{}, orgID).Error
	})
}
