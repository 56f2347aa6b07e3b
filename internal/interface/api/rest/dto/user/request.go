package user

type Request struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`

	TinNumber   string `json:"tin_number,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`

	IsEmailVerified *bool `json:"is_email_verified,omitempty"`
	IsSeller        *bool `json:"is_seller,omitempty"`

	// Presence of is_banned switches the update endpoint onto the
	// ban-toggle path instead of the general field update.
	IsBanned *bool `json:"is_banned,omitempty"`
}
