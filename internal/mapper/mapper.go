// Package mapper translates between storage-shape records and
// application-shape records. Transforms are pure and total: missing or
// malformed source fields map to documented defaults, never to a panic
// or a half-mapped value.
package mapper

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"
	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"
)

// ParseAmount reads a stored decimal string. Absent or unparseable
// values become 0, as do negatives; balances are never negative.
func ParseAmount(raw *string) float64 {
	if raw == nil {
		return 0
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}

func FormatAmount(v float64) string {
	if v < 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parsePoints(raw *string) int {
	if raw == nil {
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil || v < 0 {
		return 0
	}

	return v
}

// splitList splits a delimiter-joined storage field into an ordered
// sequence, dropping empty segments. Whitespace-only input maps to an
// empty slice, not [""].
func splitList(raw, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func joinList(items []string, sep string) string {
	return strings.Join(items, sep)
}

// stringList decodes a jsonb array field. Anything that is not a JSON
// array of strings degrades to an empty slice.
func stringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}

	return out
}

func jsonList(items []string) []byte {
	if items == nil {
		items = []string{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return []byte("[]")
	}

	return data
}

func fundingStatus(raw string) types.FundingStatus {
	switch types.FundingStatus(raw) {
	case types.FundingStatusActive, types.FundingStatusCompleted:
		return types.FundingStatus(raw)
	default:
		return types.FundingStatusNotFunded
	}
}

func optionalDate(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}

func datePtr(date string) *string {
	if date == "" {
		return nil
	}
	return &date
}

func amountPtr(v float64) *string {
	s := FormatAmount(v)
	return &s
}

func QuestToApp(rec store.QuestRecord) types.Quest {
	return types.Quest{
		ContentRecord: types.ContentRecord{
			ID:               rec.ID,
			Title:            rec.Title,
			AmountNeeded:     ParseAmount(rec.AmountNeeded),
			AmountRaised:     ParseAmount(rec.AmountRaised),
			FundingStatus:    fundingStatus(rec.FundingStatus),
			GalleryImages:    stringList(rec.GalleryImages),
			CompletionImages: stringList(rec.CompletionImages),
			CompletionNote:   rec.CompletionNote,
			DateCompleted:    optionalDate(rec.DateCompleted),
		},
		Purpose:     rec.Purpose,
		Difficulty:  types.Difficulty(rec.Difficulty),
		TimeNeeded:  rec.TimeNeeded,
		Steps:       splitList(rec.Steps, "\n"),
		Impact:      rec.Impact,
		SharePrompt: rec.SharePrompt,
	}
}

func QuestToRecord(q types.Quest) store.QuestRecord {
	return store.QuestRecord{
		ID:               q.ID,
		Title:            q.Title,
		AmountNeeded:     amountPtr(q.AmountNeeded),
		AmountRaised:     amountPtr(q.AmountRaised),
		FundingStatus:    string(fundingStatus(string(q.FundingStatus))),
		GalleryImages:    jsonList(q.GalleryImages),
		CompletionImages: jsonList(q.CompletionImages),
		CompletionNote:   q.CompletionNote,
		DateCompleted:    datePtr(q.DateCompleted),
		Purpose:          q.Purpose,
		Difficulty:       string(q.Difficulty),
		TimeNeeded:       q.TimeNeeded,
		Steps:            joinList(q.Steps, "\n"),
		Impact:           q.Impact,
		SharePrompt:      q.SharePrompt,
	}
}

func EventToApp(rec store.EventRecord) types.Event {
	return types.Event{
		ContentRecord: types.ContentRecord{
			ID:               rec.ID,
			Title:            rec.Title,
			AmountNeeded:     ParseAmount(rec.AmountNeeded),
			AmountRaised:     ParseAmount(rec.AmountRaised),
			FundingStatus:    fundingStatus(rec.FundingStatus),
			GalleryImages:    stringList(rec.GalleryImages),
			CompletionImages: stringList(rec.CompletionImages),
			CompletionNote:   rec.CompletionNote,
			DateCompleted:    optionalDate(rec.DateCompleted),
		},
		Host:             rec.Host,
		Type:             types.EventType(rec.EventType),
		Date:             rec.Date,
		Location:         rec.Location,
		Description:      rec.Description,
		RegistrationLink: rec.RegistrationLink,
	}
}

func EventToRecord(e types.Event) store.EventRecord {
	return store.EventRecord{
		ID:               e.ID,
		Title:            e.Title,
		AmountNeeded:     amountPtr(e.AmountNeeded),
		AmountRaised:     amountPtr(e.AmountRaised),
		FundingStatus:    string(fundingStatus(string(e.FundingStatus))),
		GalleryImages:    jsonList(e.GalleryImages),
		CompletionImages: jsonList(e.CompletionImages),
		CompletionNote:   e.CompletionNote,
		DateCompleted:    datePtr(e.DateCompleted),
		Host:             e.Host,
		EventType:        string(e.Type),
		Date:             e.Date,
		Location:         e.Location,
		Description:      e.Description,
		RegistrationLink: e.RegistrationLink,
	}
}

func RoleToApp(rec store.RoleRecord) types.Role {
	return types.Role{
		ID:          rec.ID,
		Name:        rec.Name,
		Singular:    rec.Singular,
		Description: rec.Description,
		Color:       rec.Color,
		Traits:      splitList(rec.Traits, "\n"),
		Philosophy:  rec.Philosophy,
		IsExclusive: rec.IsExclusive,
		Image:       rec.Image,
	}
}

func RoleToRecord(role types.Role) store.RoleRecord {
	return store.RoleRecord{
		ID:          role.ID,
		Name:        role.Name,
		Singular:    role.Singular,
		Description: role.Description,
		Color:       role.Color,
		Traits:      joinList(role.Traits, "\n"),
		Philosophy:  role.Philosophy,
		IsExclusive: role.IsExclusive,
		Image:       role.Image,
	}
}

func DreamerToApp(rec store.DreamerRecord) types.Dreamer {
	points := parsePoints(rec.Points)

	socials := make(map[string]string, 4)
	if rec.SocialYoutube != "" {
		socials["youtube"] = rec.SocialYoutube
	}
	if rec.SocialInstagram != "" {
		socials["instagram"] = rec.SocialInstagram
	}
	if rec.SocialFacebook != "" {
		socials["facebook"] = rec.SocialFacebook
	}
	if rec.SocialTwitter != "" {
		socials["twitter"] = rec.SocialTwitter
	}

	return types.Dreamer{
		ID:         rec.ID,
		Name:       rec.Name,
		Role:       rec.RoleID,
		Title:      rec.Title,
		Avatar:     rec.Avatar,
		CoverImage: rec.CoverImage,
		Bio:        rec.Bio,
		Themes:     splitList(rec.Themes, ","),
		Socials:    socials,
		Points:     points,
		Level:      points / 100,
	}
}

func DreamerToRecord(d types.Dreamer) store.DreamerRecord {
	points := strconv.Itoa(max(d.Points, 0))

	return store.DreamerRecord{
		ID:              d.ID,
		Name:            d.Name,
		RoleID:          d.Role,
		Title:           d.Title,
		Avatar:          d.Avatar,
		CoverImage:      d.CoverImage,
		Bio:             d.Bio,
		Themes:          joinList(d.Themes, ","),
		SocialYoutube:   d.Socials["youtube"],
		SocialInstagram: d.Socials["instagram"],
		SocialFacebook:  d.Socials["facebook"],
		SocialTwitter:   d.Socials["twitter"],
		Points:          &points,
	}
}

func SponsorToApp(rec store.SponsorRecord) types.Sponsor {
	return types.Sponsor{
		ID:     rec.ID,
		Name:   rec.Name,
		Title:  rec.Title,
		Avatar: rec.Avatar,
		Bio:    rec.Bio,
		Themes: splitList(rec.Themes, ","),
	}
}

func SponsorToRecord(s types.Sponsor) store.SponsorRecord {
	return store.SponsorRecord{
		ID:     s.ID,
		Name:   s.Name,
		Title:  s.Title,
		Avatar: s.Avatar,
		Bio:    s.Bio,
		Themes: joinList(s.Themes, ","),
	}
}

func AnnouncementToApp(rec store.AnnouncementRecord) types.Announcement {
	return types.Announcement{
		ID:       rec.ID,
		Title:    rec.Title,
		Date:     rec.Date,
		Content:  rec.Content,
		LinkText: rec.LinkText,
		LinkTo:   rec.LinkTo,
	}
}

func AnnouncementToRecord(a types.Announcement) store.AnnouncementRecord {
	return store.AnnouncementRecord{
		ID:       a.ID,
		Title:    a.Title,
		Date:     a.Date,
		Content:  a.Content,
		LinkText: a.LinkText,
		LinkTo:   a.LinkTo,
	}
}

func DonationToApp(rec store.DonationRecord) types.Donation {
	sponsorshipType := types.SponsorshipType(rec.SponsorshipType)
	if sponsorshipType == "" {
		sponsorshipType = types.SponsorshipGeneral
	}

	return types.Donation{
		ID:              rec.ID,
		Name:            rec.Name,
		Email:           rec.Email,
		Amount:          ParseAmount(rec.Amount),
		Type:            types.DonationType(rec.DonationType),
		Message:         rec.Message,
		Date:            rec.Date,
		Status:          types.DonationStatus(rec.Status),
		PaymentMethod:   rec.PaymentMethod,
		TransactionID:   rec.TransactionID,
		SponsorshipType: sponsorshipType,
		SponsorshipID:   rec.SponsorshipID,
	}
}

func DonationInputToRecord(in types.DonationInput) store.DonationRecord {
	sponsorshipType := in.SponsorshipType
	if sponsorshipType == "" {
		sponsorshipType = types.SponsorshipGeneral
	}

	return store.DonationRecord{
		Name:            in.Name,
		Email:           in.Email,
		Amount:          amountPtr(in.Amount),
		DonationType:    string(in.Type),
		Message:         in.Message,
		Date:            in.Date,
		Status:          string(in.Status),
		PaymentMethod:   in.PaymentMethod,
		TransactionID:   in.TransactionID,
		SponsorshipType: string(sponsorshipType),
		SponsorshipID:   in.SponsorshipID,
		ReconcileStatus: store.ReconcileNone,
	}
}

func StudentToApp(rec store.AcademyStudentRecord) types.AcademyStudent {
	return types.AcademyStudent{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		Track:        rec.Track,
		Avatar:       rec.Avatar,
		EnrolledDate: rec.EnrolledDate,
	}
}

func StudentToRecord(s types.AcademyStudent) store.AcademyStudentRecord {
	return store.AcademyStudentRecord{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Track:        s.Track,
		Avatar:       s.Avatar,
		EnrolledDate: s.EnrolledDate,
	}
}
