package guestservice

// Guest карточка гостя из справочника
type Guest struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	IsBlocked bool    `json:"is_blocked"`
}
