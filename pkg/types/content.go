package types

type FundingStatus string

const (
	FundingStatusNotFunded FundingStatus = "not-funded"
	FundingStatusActive    FundingStatus = "active"
	FundingStatusCompleted FundingStatus = "completed"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type EventType string

const (
	EventTypeOnline  EventType = "online"
	EventTypeOffline EventType = "offline"
	EventTypeHybrid  EventType = "hybrid"
)

// ContentRecord is the funding-related base shared by Quest and Event.
// AmountRaised is never negative; FundingStatus "active" implies a
// nonzero AmountNeeded.
type ContentRecord struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	AmountNeeded     float64       `json:"amountNeeded"`
	AmountRaised     float64       `json:"amountRaised"`
	FundingStatus    FundingStatus `json:"fundingStatus"`
	GalleryImages    []string      `json:"galleryImages"`
	CompletionImages []string      `json:"completionImages"`
	CompletionNote   string        `json:"completionNote"`
	DateCompleted    string        `json:"dateCompleted,omitempty"`
}

type Quest struct {
	ContentRecord

	Purpose     string     `json:"purpose"`
	Difficulty  Difficulty `json:"difficulty"`
	TimeNeeded  string     `json:"timeNeeded"`
	Steps       []string   `json:"steps"`
	Impact      string     `json:"impact"`
	SharePrompt string     `json:"sharePrompt"`
}

type Event struct {
	ContentRecord

	Host             string    `json:"host"`
	Type             EventType `json:"type"`
	Date             string    `json:"date"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	RegistrationLink string    `json:"registrationLink"`
}

// Sponsorship is the derived funding-goal view over quests and events.
// It is recomputed from the snapshot and never persisted.
type Sponsorship struct {
	ID            string          `json:"id"`
	Type          SponsorshipType `json:"type"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	AmountNeeded  float64         `json:"amountNeeded"`
	AmountRaised  float64         `json:"amountRaised"`
	FundingStatus FundingStatus   `json:"fundingStatus"`
}
