package httpx

// SessionCookieName is the browser session cookie.
const SessionCookieName = "session_id"

// Page identifiers double as template names ("<page>-page") and nav
// highlighting keys.
const (
	PageLogin           = "login"
	PageDashboard       = "dashboard"
	PageBooks           = "books"
	PageBookForm        = "book-form"
	PageTransactions    = "transactions"
	PageTransactionForm = "transaction-form"
	PageUsers           = "users"
	PageUserForm        = "user-form"
)

// FormMode distinguishes create from edit in shared form handlers.
type FormMode string

const (
	// FormModeCreate creates a new record.
	FormModeCreate FormMode = "create"
	// FormModeEdit updates an existing record.
	FormModeEdit FormMode = "edit"
)
