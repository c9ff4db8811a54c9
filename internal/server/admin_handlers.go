package server

import (
	"net/http"
	"time"

	"github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

	"github.com/alexedwards/flow"
)

func decodeInto(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return &types.ValidationError{Field: "form", Reason: "malformed form body"}
	}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		return &types.ValidationError{Field: "form", Reason: err.Error()}
	}
	return nil
}

// handleLogin is the admin auth boundary: a static password compare,
// nothing more. A matching password gets an encrypted session cookie.
func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input types.LoginForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	if s.config.AdminPassword == "" || !passwordsEqual(input.Password, s.config.AdminPassword) {
		s.writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	encoded, err := s.cookie.Encode(s.config.CookieName, adminSessionValue)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode admin session cookie")
		s.writeError(w, http.StatusInternalServerError, "session setup failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.config.SessionMaxAgeSec,
		Expires:  time.Now().Add(time.Duration(s.config.SessionMaxAgeSec) * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func questFromForm(f types.QuestForm) (types.Quest, error) {
	if f.Title == "" {
		return types.Quest{}, &types.ValidationError{Field: "title", Reason: "required"}
	}

	return types.Quest{
		ContentRecord: types.ContentRecord{
			Title:          f.Title,
			AmountNeeded:   f.AmountNeeded,
			FundingStatus:  types.FundingStatus(f.FundingStatus),
			CompletionNote: f.CompletionNote,
			DateCompleted:  f.DateCompleted,
		},
		Purpose:     f.Purpose,
		Difficulty:  types.Difficulty(f.Difficulty),
		TimeNeeded:  f.TimeNeeded,
		Steps:       splitFormLines(f.Steps),
		Impact:      f.Impact,
		SharePrompt: f.SharePrompt,
	}, nil
}

func (s *Service) handleAddQuest(w http.ResponseWriter, r *http.Request) {
	var input types.QuestForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	quest, err := questFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.AddQuest(r.Context(), quest); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (s *Service) handleUpdateQuest(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var input types.QuestForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	quest, err := questFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	// Updates keep the stored running balance; the ledger owns it.
	if current, ok := findQuest(s.content.Snapshot().Quests, id); ok {
		quest.AmountRaised = current.AmountRaised
		quest.GalleryImages = current.GalleryImages
		quest.CompletionImages = current.CompletionImages
	}

	if err := s.content.UpdateQuest(r.Context(), id, quest); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleDeleteQuest(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteQuest(r.Context(), flow.Param(r.Context(), "id")); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func eventFromForm(f types.EventForm) (types.Event, error) {
	if f.Title == "" {
		return types.Event{}, &types.ValidationError{Field: "title", Reason: "required"}
	}

	return types.Event{
		ContentRecord: types.ContentRecord{
			Title:         f.Title,
			AmountNeeded:  f.AmountNeeded,
			FundingStatus: types.FundingStatus(f.FundingStatus),
		},
		Host:             f.Host,
		Type:             types.EventType(f.Type),
		Date:             f.Date,
		Location:         f.Location,
		Description:      f.Description,
		RegistrationLink: f.RegistrationLink,
	}, nil
}

func (s *Service) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var input types.EventForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	event, err := eventFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.AddEvent(r.Context(), event); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (s *Service) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var input types.EventForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	event, err := eventFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if current, ok := findEvent(s.content.Snapshot().Events, id); ok {
		event.AmountRaised = current.AmountRaised
		event.GalleryImages = current.GalleryImages
		event.CompletionImages = current.CompletionImages
	}

	if err := s.content.UpdateEvent(r.Context(), id, event); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteEvent(r.Context(), flow.Param(r.Context(), "id")); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func roleFromForm(f types.RoleForm) (types.Role, error) {
	if f.Name == "" {
		return types.Role{}, &types.ValidationError{Field: "name", Reason: "required"}
	}

	return types.Role{
		Name:        f.Name,
		Singular:    f.Singular,
		Description: f.Description,
		Color:       f.Color,
		Traits:      splitFormLines(f.Traits),
		Philosophy:  f.Philosophy,
		IsExclusive: f.IsExclusive,
		Image:       f.Image,
	}, nil
}

func (s *Service) handleAddRole(w http.ResponseWriter, r *http.Request) {
	var input types.RoleForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	role, err := roleFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.AddRole(r.Context(), role); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (s *Service) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var input types.RoleForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	role, err := roleFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.UpdateRole(r.Context(), id, role); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteRole(r.Context(), flow.Param(r.Context(), "id")); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func dreamerFromForm(f types.DreamerForm) (types.Dreamer, error) {
	if f.Name == "" {
		return types.Dreamer{}, &types.ValidationError{Field: "name", Reason: "required"}
	}

	socials := make(map[string]string, 4)
	if f.Youtube != "" {
		socials["youtube"] = f.Youtube
	}
	if f.Instagram != "" {
		socials["instagram"] = f.Instagram
	}
	if f.Facebook != "" {
		socials["facebook"] = f.Facebook
	}
	if f.Twitter != "" {
		socials["twitter"] = f.Twitter
	}

	return types.Dreamer{
		Name:       f.Name,
		Role:       f.Role,
		Title:      f.Title,
		Avatar:     f.Avatar,
		CoverImage: f.CoverImage,
		Bio:        f.Bio,
		Themes:     splitFormCommas(f.Themes),
		Socials:    socials,
		Points:     f.Points,
	}, nil
}

func (s *Service) handleAddDreamer(w http.ResponseWriter, r *http.Request) {
	var input types.DreamerForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	dreamer, err := dreamerFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.AddDreamer(r.Context(), dreamer); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (s *Service) handleUpdateDreamer(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var input types.DreamerForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	dreamer, err := dreamerFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.UpdateDreamer(r.Context(), id, dreamer); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleDeleteDreamer(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteDreamer(r.Context(), flow.Param(r.Context(), "id")); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func sponsorFromForm(f types.SponsorForm) (types.Sponsor, error) {
	if f.Name == "" {
		return types.Sponsor{}, &types.ValidationError{Field: "name", Reason: "required"}
	}

	return types.Sponsor{
		Name:   f.Name,
		Title:  f.Title,
		Avatar: f.Avatar,
		Bio:    f.Bio,
		Themes: splitFormCommas(f.Themes),
	}, nil
}

func (s *Service) handleAddSponsor(w http.ResponseWriter, r *http.Request) {
	var input types.SponsorForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	sponsor, err := sponsorFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.AddSponsor(r.Context(), sponsor); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
}

func (s *Service) handleUpdateSponsor(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	var input types.SponsorForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	sponsor, err := sponsorFromForm(input)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}

	if err := s.content.UpdateSponsor(r.Context(), id, sponsor); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleDeleteSponsor(w http.ResponseWriter, r *http.Request) {
	if err := s.content.DeleteSponsor(r.Context(), flow.Param(r.Context(), "id")); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Service) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var input types.AnnouncementForm
	if err := decodeInto(r, &input); err != nil {
		s.writeOperationError(w, err)
		return
	}

	if input.Title == "" {
		s.writeOperationError(w, &types.ValidationError{Field: "title", Reason: "required"})
		return
	}

	announcement := types.Announcement{
		Title:    input.Title,
		Date:     input.Date,
		Content:  input.Content,
		LinkText: input.LinkText,
		LinkTo:   input.LinkTo,
	}

	if err := s.content.UpdateAnnouncement(r.Context(), announcement); err != nil {
		s.writeOperationError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func findQuest(quests []types.Quest, id string) (types.Quest, bool) {
	for _, q := range quests {
		if q.ID == id {
			return q, true
		}
	}
	return types.Quest{}, false
}

func findEvent(events []types.Event, id string) (types.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return types.Event{}, false
}
