package classrooms

import "classhub/app/models"

// availableUsers set-differences the full user list against the classroom's
// membership and the requesting user.
func availableUsers(users []*models.User, memberIDs []int64, currentUserID int64) []*models.User {
	exclude := make(map[int64]bool, len(memberIDs)+1)
	for _, id := range memberIDs {
		exclude[id] = true
	}
	exclude[currentUserID] = true

	available := []*models.User{}
	for _, user := range users {
		if !exclude[user.ID] {
			available = append(available, user)
		}
	}
	return available
}
