package contextkeys

// Custom type so context keys cannot collide with other packages.
type contextKey string

// AccountIDKey is the key under which the authenticated account id is stored.
const AccountIDKey = contextKey("accountID")
