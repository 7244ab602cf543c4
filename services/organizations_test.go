package services

import (
	"errors"
	"testing"

	"github.com/orgchathq/orgchat-api/models"
)

// Creating an organization must also create exactly one OWNER membership for
// the creator, atomically.
func TestOrgCreate_OwnerMembership(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	orgs := &OrganizationsService{DB: db}

	org, err := orgs.Create(owner.ID, "Acme")
	if err != nil {
		t.Fatalf("create org: %v", err)
	}

	var members []*models.Member
	if err := db.Where("organization_id = ?", org.ID).Find(&members).Error; err != nil {
		t.Fatalf("load members: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("member count = %d, want exactly 1", len(members))
	}
	if members[0].Role != models.RoleOwner {
		t.Errorf("member role = %s, want OWNER", members[0].Role)
	}
	if members[0].UserID != owner.ID {
		t.Errorf("owner member user id = %d, want %d", members[0].UserID, owner.ID)
	}
	if org.OwnerID != owner.ID {
		t.Errorf("org owner id = %d, want %d", org.OwnerID, owner.ID)
	}
}

func TestOrgCreate_RejectsBlankNames(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	orgs := &OrganizationsService{DB: db}

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := orgs.Create(owner.ID, name); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Create(%q) error = %v, want ErrNameRequired", name, err)
		}
	}

	var count int64
	if err := db.Model(&models.Organization{}).Count(&count).Error; err != nil {
		t.Fatalf("count orgs: %v", err)
	}
	if count != 0 {
		t.Errorf("organization count = %d, want 0 after rejected creates", count)
	}
}

func TestOrgListForUser(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	orgs := &OrganizationsService{DB: db}

	acme := createTestOrg(t, db, owner.ID, "Acme")
	createTestOrg(t, db, other.ID, "Globex")
	addTestMember(t, db, acme.ID, other.ID, models.RoleModerator)

	memberships, err := orgs.ListForUser(other.ID)
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(memberships) != 2 {
		t.Fatalf("membership count = %d, want 2", len(memberships))
	}
	roles := map[string]models.Role{}
	for _, m := range memberships {
		if m.Organization == nil {
			t.Fatal("membership organization not loaded")
		}
		roles[m.Organization.Name] = m.Role
	}
	if roles["Globex"] != models.RoleOwner {
		t.Errorf("role in Globex = %s, want OWNER", roles["Globex"])
	}
	if roles["Acme"] != models.RoleModerator {
		t.Errorf("role in Acme = %s, want MODERATOR", roles["Acme"])
	}
}

func TestOrgGetWithMembers(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	orgs := &OrganizationsService{DB: db}
	org := createTestOrg(t, db, owner.ID, "Acme")

	loaded, err := orgs.GetWithMembers(org.ID)
	if err != nil {
		t.Fatalf("get with members: %v", err)
	}
	if loaded == nil {
		t.Fatal("organization not found")
	}
	if loaded.Owner == nil || loaded.Owner.Email != "owner@example.com" {
		t.Error("owner not eagerly loaded")
	}
	if len(loaded.Members) != 1 || loaded.Members[0].User == nil {
		t.Error("members and their users not eagerly loaded")
	}

	missing, err := orgs.GetWithMembers(99999)
	if err != nil {
		t.Fatalf("get missing org: %v", err)
	}
	if missing != nil {
		t.Error("missing organization should be nil, nil")
	}
}

func TestOrgDelete_Cascades(t *testing.T) {
	db := openTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	orgs := &OrganizationsService{DB: db}
	rooms := &ChatRoomsService{DB: db}
	messages := &MessagesService{DB: db}

	org := createTestOrg(t, db, owner.ID, "Acme")
	member := ownerMember(t, db, org.ID, owner.ID)
	room, err := rooms.Create(org.ID, "general", []uint64{member.ID})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if _, err := messages.Post(room.ID, member.ID, "hello"); err != nil {
		t.Fatalf("post message: %v", err)
	}

	if err := orgs.Delete(org.ID); err != nil {
		t.Fatalf("delete org: %v", err)
	}

	for _, check := range []struct {
		name  string
		model interface{}
	}{
		{"organizations", &models.Organization{}},
		{"members", &models.Member{}},
		{"chat rooms", &models.ChatRoom{}},
		{"chat access", &models.ChatAccess{}},
		{"messages", &models.Message{}},
	} {
		var count int64
		if err := db.Model(check.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", check.name, err)
		}
		if count != 0 {
			t.Errorf("%s count = %d after org delete, want 0", check.name, count)
		}
	}
}
