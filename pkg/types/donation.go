package types

type DonationStatus string

const (
	DonationStatusSuccess DonationStatus = "success"
	DonationStatusFailed  DonationStatus = "failed"
)

type DonationType string

const (
	DonationTypeOneTime DonationType = "one-time"
	DonationTypeMonthly DonationType = "monthly"
)

type SponsorshipType string

const (
	SponsorshipGeneral SponsorshipType = "general"
	SponsorshipQuest   SponsorshipType = "quest"
	SponsorshipEvent   SponsorshipType = "event"
)

// Donation is immutable once recorded; deletion is the only mutation
// path and triggers a compensating balance adjustment on the goal it
// referenced.
type Donation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Amount          float64         `json:"amount"`
	Type            DonationType    `json:"type"`
	Message         string          `json:"message"`
	Date            string          `json:"date"`
	Status          DonationStatus  `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	TransactionID   string          `json:"transactionId"`
	SponsorshipType SponsorshipType `json:"sponsorshipType"`
	SponsorshipID   string          `json:"sponsorshipId,omitempty"`
}

// DonationInput is what the payment confirmation boundary hands to the
// ledger. Amount must already be validated by the caller.
type DonationInput struct {
	Name            string
	Email           string
	Amount          float64
	Type            DonationType
	Message         string
	Date            string
	Status          DonationStatus
	PaymentMethod   string
	TransactionID   string
	SponsorshipType SponsorshipType
	SponsorshipID   string
}

// Targeted reports whether the donation is directed at a specific goal
// rather than the general fund.
func (d DonationInput) Targeted() bool {
	return d.SponsorshipID != "" && d.SponsorshipType != SponsorshipGeneral && d.SponsorshipType != ""
}
