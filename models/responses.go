package models

// SignInResponse is the body returned by a successful sign-in: the bearer
// token plus the profile fields and both embedded collections.
type SignInResponse struct {
	Token     string          `json:"token"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Spending  []SpendingEntry `json:"spending"`
	Budget    []BudgetEntry   `json:"budget"`
}
