package store

import "time"

// Storage-shape records, mirroring the denormalized remote schema:
// snake_case columns, flattened scalars. Monetary amounts and points
// travel as decimal strings; list-valued fields are delimiter-joined
// text or jsonb arrays. The schema mapper owns all coercion between
// these and the application shapes in pkg/types.

type QuestRecord struct {
	ID               string    `db:"id"`
	Title            string    `db:"title"`
	AmountNeeded     *string   `db:"amount_needed"`
	AmountRaised     *string   `db:"amount_raised"`
	FundingStatus    string    `db:"funding_status"`
	GalleryImages    []byte    `db:"gallery_images"`    // jsonb array of urls
	CompletionImages []byte    `db:"completion_images"` // jsonb array of urls
	CompletionNote   string    `db:"completion_note"`
	DateCompleted    *string   `db:"date_completed"`
	Purpose          string    `db:"purpose"`
	Difficulty       string    `db:"difficulty"`
	TimeNeeded       string    `db:"time_needed"`
	Steps            string    `db:"steps"` // newline-joined
	Impact           string    `db:"impact"`
	SharePrompt      string    `db:"share_prompt"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type EventRecord struct {
	ID               string    `db:"id"`
	Title            string    `db:"title"`
	AmountNeeded     *string   `db:"amount_needed"`
	AmountRaised     *string   `db:"amount_raised"`
	FundingStatus    string    `db:"funding_status"`
	GalleryImages    []byte    `db:"gallery_images"`
	CompletionImages []byte    `db:"completion_images"`
	CompletionNote   string    `db:"completion_note"`
	DateCompleted    *string   `db:"date_completed"`
	Host             string    `db:"host"`
	EventType        string    `db:"event_type"`
	Date             string    `db:"date"`
	Location         string    `db:"location"`
	Description      string    `db:"description"`
	RegistrationLink string    `db:"registration_link"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type RoleRecord struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Singular    string    `db:"singular"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	Traits      string    `db:"traits"` // newline-joined
	Philosophy  string    `db:"philosophy"`
	IsExclusive bool      `db:"is_exclusive"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type DreamerRecord struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	RoleID          string    `db:"role_id"`
	Title           string    `db:"title"`
	Avatar          string    `db:"avatar"`
	CoverImage      string    `db:"cover_image"`
	Bio             string    `db:"bio"`
	Themes          string    `db:"themes"` // comma-joined
	SocialYoutube   string    `db:"social_youtube"`
	SocialInstagram string    `db:"social_instagram"`
	SocialFacebook  string    `db:"social_facebook"`
	SocialTwitter   string    `db:"social_twitter"`
	Points          *string   `db:"points"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type SponsorRecord struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Title     string    `db:"title"`
	Avatar    string    `db:"avatar"`
	Bio       string    `db:"bio"`
	Themes    string    `db:"themes"` // comma-joined
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AnnouncementRecord struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Date      string    `db:"date"`
	Content   string    `db:"content"`
	LinkText  string    `db:"link_text"`
	LinkTo    string    `db:"link_to"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Donation reconcile states. A targeted successful donation is inserted
// as pending and flipped to done once the goal balance write lands; the
// reconciler retries anything left pending.
const (
	ReconcileNone    = "none"
	ReconcilePending = "pending"
	ReconcileDone    = "done"
)

type DonationRecord struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Amount          *string   `db:"amount"`
	DonationType    string    `db:"donation_type"`
	Message         string    `db:"message"`
	Date            string    `db:"date"`
	Status          string    `db:"status"`
	PaymentMethod   string    `db:"payment_method"`
	TransactionID   string    `db:"transaction_id"`
	SponsorshipType string    `db:"sponsorship_type"`
	SponsorshipID   string    `db:"sponsorship_id"`
	ReconcileStatus string    `db:"reconcile_status"`
	CreatedAt       time.Time `db:"created_at"`
}

type AcademyStudentRecord struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Track        string    `db:"track"`
	Avatar       string    `db:"avatar"`
	EnrolledDate string    `db:"enrolled_date"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
