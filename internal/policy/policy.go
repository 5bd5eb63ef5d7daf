package policy

import "github.com/haguru/bloglist/internal/models"

// CanModify reports whether the identity with the given user id may mutate the
// blog. A blog without an owner can never be modified by any identity; such
// records only exist as legacy data from before authentication was introduced.
// This is the single chokepoint for the update and delete flows and must stay
// side-effect free so a denied request never leaves a partial mutation behind.
func CanModify(blog *models.Blog, userID string) bool {
	if blog == nil || blog.UserID == "" || userID == "" {
		return false
	}
	return blog.UserID == userID
}
