package dto

// UserFullNameRequest represents the request body for the partial name
// update (PATCH /users/:id). Both fields are optional; an absent or empty
// field leaves the stored value untouched.
type UserFullNameRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
