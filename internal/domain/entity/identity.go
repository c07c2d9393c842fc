package entity

// Identity is the payload embedded in a signed access token. It is immutable
// once issued: verification returns it exactly as it was signed.
type Identity struct {
	UserID int64  // The authenticated user's primary key.
	Email  string // The email the account was authenticated with.
}
