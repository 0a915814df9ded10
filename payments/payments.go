package payments

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

// Payment is a hostel fee payment. Amount is in the smallest currency unit
// the backend reports; the client does no arithmetic on it.
type Payment struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"student_id,omitempty"`
	StudentName   string  `json:"student_name,omitempty"`
	ApplicationID string  `json:"application_id,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	Reference     string  `json:"reference,omitempty"` // Gateway or bank reference
	Method        string  `json:"method,omitempty"`
	Status        Status  `json:"status"`
	PaidAt        string  `json:"paid_at,omitempty"`
	VerifiedAt    string  `json:"verified_at,omitempty"`
}

type Input struct {
	StudentID     string  `json:"student_id,omitempty"`
	ApplicationID string  `json:"application_id,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Reference     string  `json:"reference,omitempty"`
	Method        string  `json:"method,omitempty"`
	Status        Status  `json:"status,omitempty"`
}

type Statistics struct {
	TotalPayments  int     `json:"total_payments"`
	TotalAmount    float64 `json:"total_amount"`
	VerifiedAmount float64 `json:"verified_amount"`
	PendingCount   int     `json:"pending_count"`
	VerifiedCount  int     `json:"verified_count"`
	FailedCount    int     `json:"failed_count"`
	RefundedCount  int     `json:"refunded_count"`
	CollectionRate float64 `json:"collection_rate,omitempty"`
}
