package classrooms

import (
	"testing"

	"classhub/app/models"
)

func userList(ids ...int64) []*models.User {
	users := make([]*models.User, len(ids))
	for i, id := range ids {
		users[i] = &models.User{ID: id}
	}
	return users
}

func TestAvailableUsersExcludesMembersAndSelf(t *testing.T) {
	users := userList(1, 2, 3, 4, 5)
	got := availableUsers(users, []int64{2, 3}, 1)

	want := map[int64]bool{4: true, 5: true}
	if len(got) != len(want) {
		t.Fatalf("availableUsers() returned %d users, want %d", len(got), len(want))
	}
	for _, u := range got {
		if !want[u.ID] {
			t.Errorf("availableUsers() included user %d", u.ID)
		}
	}
}

func TestAvailableUsersSizeArithmetic(t *testing.T) {
	// requester is itself a member: result = total - 1 - (members excluding requester)
	users := userList(1, 2, 3, 4, 5, 6)
	members := []int64{1, 2, 3}
	got := availableUsers(users, members, 1)

	want := len(users) - 1 - 2
	if len(got) != want {
		t.Errorf("availableUsers() returned %d users, want %d", len(got), want)
	}
}

func TestAvailableUsersNoMembers(t *testing.T) {
	users := userList(7, 8)
	got := availableUsers(users, nil, 7)

	if len(got) != 1 || got[0].ID != 8 {
		t.Errorf("availableUsers() = %v, want only user 8", got)
	}
}

func TestAvailableUsersEmpty(t *testing.T) {
	got := availableUsers(nil, nil, 1)
	if got == nil {
		t.Error("availableUsers() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("availableUsers() returned %d users, want 0", len(got))
	}
}
