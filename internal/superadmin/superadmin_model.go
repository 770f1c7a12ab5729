package superadmin

// Account is one admin credential record as the auth endpoint reports it.
// Password hashes never leave the backend.
type Account struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}
