package services

import (
	"errors"
	"time"

	"github.com/orgchathq/orgchat-api/models"
	"gorm.io/gorm"
)

// MembersService manages organization memberships
type MembersService struct {
	DB *gorm.DB
}

// GetByID gets a member by id, with its user record
func (s *MembersService) GetByID(memberID uint64) (*models.Member, error) {
	var member models.Member
	err := s.DB.
		Preload("User").
		First(&member, memberID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// GetByUserAndOrg gets the membership of a user within an organization
func (s *MembersService) GetByUserAndOrg(userID, orgID uint64) (*models.Member, error) {
	var member models.Member
	err := s.DB.
		Where("user_id = ?", userID).
		Where("organization_id = ?", orgID).
		First(&member).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// Add creates a membership for the user in the organization. The unique
// (user, organization) index resolves concurrent duplicate adds: exactly one
// wins and the other surfaces as ErrDuplicateMember.
func (s *MembersService) Add(orgID, userID uint64, role models.Role) (*models.Member, error) {

	// Reject a duplicate membership up front
	existing, err := s.GetByUserAndOrg(userID, orgID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateMember
	}

	// Create the member row
	member := models.Member{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		CreatedDate:    time.Now(),
	}
	if err := s.DB.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateMember
		}
		return nil, err
	}

	// Reload with the user record attached
	return s.GetByID(member.ID)

}

// UpdateRole changes the member's role. There is deliberately no guard
// against demoting the last OWNER; see the design notes.
func (s *MembersService) UpdateRole(member *models.Member, role models.Role) error {
	member.Role = role
	return s.DB.
		Model(&models.Member{ID: member.ID}).
		Update("role", role).
		Error
}

// Remove deletes the membership along with every chat access row it holds,
// so the user loses chat room visibility in the same transaction
func (s *MembersService) Remove(member *models.Member) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", member.ID).Delete(&models.ChatAccess{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, member.ID).Error
	})
}
