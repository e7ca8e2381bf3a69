package handler

import (
	"medifind/internal/domain/entity"
)

// userView builds the public representation of an account, omitting the
// password hash.
func userView(user *entity.User) map[string]any {
	if user == nil {
		return nil
	}

	return map[string]any{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"phone":      user.Phone,
		"role":       user.Role,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
	}
}

func userViews(users []*entity.User) []map[string]any {
	views := make([]map[string]any, 0, len(users))
	for _, user := range users {
		views = append(views, userView(user))
	}

	return views
}
