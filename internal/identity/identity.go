package identity

// Identity is the authenticated caller, resolved by the auth middleware
// and passed explicitly into every use case. The role travels with the
// value instead of being read from ambient request state.
type Identity struct {
	UserID   uint
	IsBarber bool
}
