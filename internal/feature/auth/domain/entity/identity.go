package entity

// Identity is the set of attributes a resolved credential asserts about
// the caller. It can originate from a server-side session or from a
// verified token; identity fields are treated as hints only and are
// re-read from the store before being returned to a client.
type Identity struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`

	// PreferredLanguage is carried only inside the credential for the
	// login that produced it. It is not persisted on the user row.
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
}
