package domain

// ownerOrAdmin is the single mutation predicate: an actor may modify a post
// when it holds the admin role or owns the post.
func ownerOrAdmin(actor *User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == ownerID
}

// CanUpdate decides whether actor may edit the post owned by ownerID.
//
// Update and delete currently share one predicate. They are exposed as two
// named decisions so that narrowing admin edit rights later is a change to
// this function alone.
func CanUpdate(actor *User, ownerID string) bool {
	return ownerOrAdmin(actor, ownerID)
}

// CanDelete decides whether actor may remove the post owned by ownerID.
func CanDelete(actor *User, ownerID string) bool {
	return ownerOrAdmin(actor, ownerID)
}
