package admin

type Request struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`

	IsBanned *bool `json:"is_banned,omitempty"`
}
