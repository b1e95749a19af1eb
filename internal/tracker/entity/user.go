package entity

// User is a registered account exercises are logged against.
//
// Users are immutable once created and there is no delete operation.
type User struct {
	ID       string
	Username string
}
