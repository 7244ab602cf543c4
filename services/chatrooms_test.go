package services

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/orgchathq/orgchat-api/models"
)

func accessMemberIDs(room *models.ChatRoom) []uint64 {
	ids := make([]uint64, 0, len(room.Access))
	for _, access := range room.Access {
		ids = append(ids, access.MemberID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestChatRoomCreate(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	rooms := &ChatRoomsService{DB: db}

	room, err := rooms.Create(org.ID, "general", []uint64{member.ID})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if room.Name != "general" {
		t.Errorf("room name = %q", room.Name)
	}
	if !reflect.DeepEqual(accessMemberIDs(room), []uint64{member.ID}) {
		t.Errorf("access list = %v, want [%d]", accessMemberIDs(room), member.ID)
	}
}

func TestChatRoomCreate_Validation(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	rooms := &ChatRoomsService{DB: db}

	if _, err := rooms.Create(org.ID, "  ", []uint64{member.ID}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("blank name error = %v, want ErrNameRequired", err)
	}
	if _, err := rooms.Create(org.ID, "general", nil); !errors.Is(err, ErrMembersRequired) {
		t.Errorf("empty member list error = %v, want ErrMembersRequired", err)
	}
}

// Member ids outside the organization must be rejected, and the error must
// name the offenders.
func TestChatRoomCreate_InvalidMemberIDs(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	other := createTestOrg(t, db, stranger.ID, "Globex")
	member := ownerMember(t, db, org.ID, owner.ID)
	strangerMem := ownerMember(t, db, other.ID, stranger.ID)
	rooms := &ChatRoomsService{DB: db}

	_, err := rooms.Create(org.ID, "general", []uint64{member.ID, strangerMem.ID, 424242})
	var invalid *InvalidMemberIDsError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidMemberIDsError", err)
	}
	want := []uint64{strangerMem.ID, 424242}
	sort.Slice(invalid.IDs, func(i, j int) bool { return invalid.IDs[i] < invalid.IDs[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if !reflect.DeepEqual(invalid.IDs, want) {
		t.Errorf("invalid ids = %v, want %v", invalid.IDs, want)
	}

	var count int64
	if err := db.Model(&models.ChatRoom{}).Count(&count).Error; err != nil {
		t.Fatalf("count rooms: %v", err)
	}
	if count != 0 {
		t.Errorf("room count = %d after rejected create, want 0", count)
	}
}

// Update replaces the whole access list with the new set, regardless of the
// previous list.
func TestChatRoomUpdate_ReplacesAccessList(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	alice := createTestUser(t, db, "alice@example.com")
	carol := createTestUser(t, db, "carol@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	rooms := &ChatRoomsService{DB: db}

	ownerMem := ownerMember(t, db, org.ID, owner.ID)
	aliceMem := addTestMember(t, db, org.ID, alice.ID, models.RoleMember)
	carolMem := addTestMember(t, db, org.ID, carol.ID, models.RoleMember)

	room, err := rooms.Create(org.ID, "general", []uint64{ownerMem.ID, aliceMem.ID})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	updated, err := rooms.Update(room, "general-2", []uint64{carolMem.ID})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if updated.Name != "general-2" {
		t.Errorf("room name = %q, want general-2", updated.Name)
	}
	if !reflect.DeepEqual(accessMemberIDs(updated), []uint64{carolMem.ID}) {
		t.Errorf("access list = %v, want [%d] only", accessMemberIDs(updated), carolMem.ID)
	}

	// A fresh fetch must agree
	fetched, err := rooms.GetByID(room.ID)
	if err != nil || fetched == nil {
		t.Fatalf("refetch room: %v", err)
	}
	if !reflect.DeepEqual(accessMemberIDs(fetched), []uint64{carolMem.ID}) {
		t.Errorf("fetched access list = %v, want [%d] only", accessMemberIDs(fetched), carolMem.ID)
	}
}

func TestChatRoomUpdate_EmptySetAllowed(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	rooms := &ChatRoomsService{DB: db}

	room, err := rooms.Create(org.ID, "general", []uint64{member.ID})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	updated, err := rooms.Update(room, "general", []uint64{})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if len(updated.Access) != 0 {
		t.Errorf("access rows = %d, want 0", len(updated.Access))
	}
}

// Listing twice without intervening mutation returns identical sets in
// identical order.
func TestChatRoomListForOrg_Deterministic(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	rooms := &ChatRoomsService{DB: db}

	for _, name := range []string{"general", "random", "dev"} {
		if _, err := rooms.Create(org.ID, name, []uint64{member.ID}); err != nil {
			t.Fatalf("create room %s: %v", name, err)
		}
	}

	first, err := rooms.ListForOrg(org.ID)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := rooms.ListForOrg(org.ID)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("list lengths = %d, %d, want 3", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Errorf("list order differs at %d: %v vs %v", i, first[i].ID, second[i].ID)
		}
	}
}

func TestChatRoomDelete_Cascades(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	rooms := &ChatRoomsService{DB: db}
	messages := &MessagesService{DB: db}

	room, err := rooms.Create(org.ID, "general", []uint64{member.ID})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if _, err := messages.Post(room.ID, member.ID, "hello"); err != nil {
		t.Fatalf("post message: %v", err)
	}

	if err := rooms.Delete(room); err != nil {
		t.Fatalf("delete room: %v", err)
	}

	var accessCount, messageCount int64
	db.Model(&models.ChatAccess{}).Where("chat_room_id = ?", room.ID).Count(&accessCount)
	db.Model(&models.Message{}).Where("chat_room_id = ?", room.ID).Count(&messageCount)
	if accessCount != 0 || messageCount != 0 {
		t.Errorf("access = %d, messages = %d after room delete, want 0, 0", accessCount, messageCount)
	}
	if gone, _ := rooms.GetByID(room.ID); gone != nil {
		t.Error("room should be deleted")
	}
}
