package services

import (
	"errors"
	"strings"
	"time"

	"github.com/orgchathq/orgchat-api/models"
	"gorm.io/gorm"
)

// ChatRoomsService manages chat rooms and their access lists
type ChatRoomsService struct {
	DB *gorm.DB
}

// GetByID gets a chat room with its access list, including the member and
// user behind each access row
func (s *ChatRoomsService) GetByID(roomID uint64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.
		Preload("Access.Member.User").
		First(&room, roomID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// ListForOrg returns the organization's chat rooms with access lists and
// messages eagerly loaded, in stable id order
func (s *ChatRoomsService) ListForOrg(orgID uint64) ([]*models.ChatRoom, error) {
	var rooms []*models.ChatRoom
	err := s.DB.
		Preload("Access.Member.User").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.id ASC")
		}).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&rooms).
		Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Create creates a chat room in the organization and grants access to the
// listed members, all in one transaction. Every member id must belong to the
// organization.
func (s *ChatRoomsService) Create(orgID uint64, name string, memberIDs []uint64) (*models.ChatRoom, error) {

	// Validate the name and member set
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	memberIDs = dedupeIDs(memberIDs)
	if len(memberIDs) == 0 {
		return nil, ErrMembersRequired
	}
	if err := s.checkMemberIDs(orgID, memberIDs); err != nil {
		return nil, err
	}

	// Create the room and its access rows together
	room := models.ChatRoom{
		OrganizationID: orgID,
		Name:           name,
		CreatedDate:    time.Now(),
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		return createAccessRows(tx, room.ID, memberIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(room.ID)

}

// Update renames the room and replaces its entire access list with the given
// member set. The old list is dropped and recreated, not diffed, so the
// result is exactly the new set.
func (s *ChatRoomsService) Update(room *models.ChatRoom, name string, memberIDs []uint64) (*models.ChatRoom, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	memberIDs = dedupeIDs(memberIDs)
	if err := s.checkMemberIDs(room.OrganizationID, memberIDs); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.ChatRoom{ID: room.ID}).
			Update("name", name).
			Error; err != nil {
			return err
		}
		if err := tx.Where("chat_room_id = ?", room.ID).Delete(&models.ChatAccess{}).Error; err != nil {
			return err
		}
		return createAccessRows(tx, room.ID, memberIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(room.ID)

}

// Delete removes the chat room along with its access rows and messages
func (s *ChatRoomsService) Delete(room *models.ChatRoom) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_room_id = ?", room.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_room_id = ?", room.ID).Delete(&models.ChatAccess{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChatRoom{}, room.ID).Error
	})
}

// checkMemberIDs verifies that every id is a member of the organization,
// returning an InvalidMemberIDsError naming the offenders otherwise
func (s *ChatRoomsService) checkMemberIDs(orgID uint64, memberIDs []uint64) error {
	if len(memberIDs) == 0 {
		return nil
	}
	var members []*models.Member
	err := s.DB.
		Where("organization_id = ?", orgID).
		Where("id IN ?", memberIDs).
		Find(&members).
		Error
	if err != nil {
		return err
	}
	if len(members) == len(memberIDs) {
		return nil
	}
	valid := make(map[uint64]bool, len(members))
	for _, member := range members {
		valid[member.ID] = true
	}
	invalid := []uint64{}
	for _, id := range memberIDs {
		if !valid[id] {
			invalid = append(invalid, id)
		}
	}
	return &InvalidMemberIDsError{IDs: invalid}
}

func createAccessRows(tx *gorm.DB, roomID uint64, memberIDs []uint64) error {
	for _, memberID := range memberIDs {
		access := models.ChatAccess{
			ChatRoomID:  roomID,
			MemberID:    memberID,
			CreatedDate: time.Now(),
		}
		if err := tx.Create(&access).Error; err != nil {
			return err
		}
	}
	return nil
}

func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]bool, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
