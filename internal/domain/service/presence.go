package service

// PresenceRegistry maps each online user to the realtime connection that last authenticated for them.
// Only one connection per user is tracked. A second connection overwrites the first.
type PresenceRegistry interface {
	// Record sets userID's connection, replacing any previous one.
	Record(userID, connID string)

	// Remove deletes userID's entry. Removing an absent user is a no-op.
	Remove(userID string)

	// RemoveConnection deletes userID's entry only while it still points at connID.
	RemoveConnection(userID, connID string) bool

	// Lookup returns userID's connection, if any.
	Lookup(userID string) (connID string, ok bool)

	// ListOnline returns every user with an entry, sorted.
	ListOnline() []string
}
