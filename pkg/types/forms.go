package types

// Admin dashboard form payloads, decoded with go-playground/form.

type LoginForm struct {
	Password string `form:"password"`
}

type QuestForm struct {
	Title          string  `form:"title"`
	Purpose        string  `form:"purpose"`
	Difficulty     string  `form:"difficulty"`
	TimeNeeded     string  `form:"time_needed"`
	Steps          string  `form:"steps"` // newline-joined in the form textarea
	Impact         string  `form:"impact"`
	SharePrompt    string  `form:"share_prompt"`
	AmountNeeded   float64 `form:"amount_needed"`
	FundingStatus  string  `form:"funding_status"`
	CompletionNote string  `form:"completion_note"`
	DateCompleted  string  `form:"date_completed"`
}

type EventForm struct {
	Title            string  `form:"title"`
	Host             string  `form:"host"`
	Type             string  `form:"type"`
	Date             string  `form:"date"`
	Location         string  `form:"location"`
	Description      string  `form:"description"`
	RegistrationLink string  `form:"registration_link"`
	AmountNeeded     float64 `form:"amount_needed"`
	FundingStatus    string  `form:"funding_status"`
}

type RoleForm struct {
	Name        string `form:"name"`
	Singular    string `form:"singular"`
	Description string `form:"description"`
	Color       string `form:"color"`
	Traits      string `form:"traits"` // newline-joined
	Philosophy  string `form:"philosophy"`
	IsExclusive bool   `form:"is_exclusive"`
	Image       string `form:"image"`
}

type DreamerForm struct {
	Name       string `form:"name"`
	Role       string `form:"role"`
	Title      string `form:"title"`
	Avatar     string `form:"avatar"`
	CoverImage string `form:"cover_image"`
	Bio        string `form:"bio"`
	Themes     string `form:"themes"` // comma-joined
	Youtube    string `form:"youtube"`
	Instagram  string `form:"instagram"`
	Facebook   string `form:"facebook"`
	Twitter    string `form:"twitter"`
	Points     int    `form:"points"`
}

type SponsorForm struct {
	Name   string `form:"name"`
	Title  string `form:"title"`
	Avatar string `form:"avatar"`
	Bio    string `form:"bio"`
	Themes string `form:"themes"` // comma-joined
}

type AnnouncementForm struct {
	Title    string `form:"title"`
	Date     string `form:"date"`
	Content  string `form:"content"`
	LinkText string `form:"link_text"`
	LinkTo   string `form:"link_to"`
}

type DonationConfirmForm struct {
	SessionID       string  `form:"session_id"`
	Outcome         string  `form:"outcome"` // success | cancelled | failed
	Name            string  `form:"name"`
	Email           string  `form:"email"`
	Amount          float64 `form:"amount"`
	Type            string  `form:"type"`
	Message         string  `form:"message"`
	SponsorshipType string  `form:"sponsorship_type"`
	SponsorshipID   string  `form:"sponsorship_id"`
}
