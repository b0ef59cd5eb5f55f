package models

// CreateAccountRequest is the payload of POST /api/user/create-account.
// All four fields are required non-empty strings. Email shape is deliberately
// not checked at sign-up; only sign-in validates it.
type CreateAccountRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignInRequest is the payload of POST /api/user/sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddSpendingRequest is the payload of POST /api/user/add-spending.
// Date accepts RFC3339 or a plain YYYY-MM-DD day.
type AddSpendingRequest struct {
	Date         string  `json:"date"`
	BusinessName string  `json:"businessName"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
}

// DeleteSpendingRequest is the payload of POST /api/user/delete-spending.
// Index is the position of the entry to remove within the sorted spending
// collection. A pointer distinguishes a missing field from index zero; the
// validator additionally rejects non-integral numbers.
type DeleteSpendingRequest struct {
	Index *float64 `json:"index"`
}

// AddBudgetRequest is the payload of POST /api/user/add-budget.
// Date is optional; when absent the entry is stamped server-side.
type AddBudgetRequest struct {
	Date        string   `json:"date,omitempty"`
	Type        string   `json:"type"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description,omitempty"`
}
