package content

import "github.com/justicekonjengbam/DreamWorld-sub000/pkg/types"

// DeriveSponsorships projects the fundable goals out of quests and
// events: exactly those with a nonzero funding target, tagged with
// their source type. Records with no target are not goals and are
// excluded.
func DeriveSponsorships(quests []types.Quest, events []types.Event) []types.Sponsorship {
	out := make([]types.Sponsorship, 0, len(quests)+len(events))

	for _, q := range quests {
		if q.AmountNeeded <= 0 {
			continue
		}
		out = append(out, types.Sponsorship{
			ID:            q.ID,
			Type:          types.SponsorshipQuest,
			Name:          q.Title,
			Description:   q.Purpose,
			AmountNeeded:  q.AmountNeeded,
			AmountRaised:  q.AmountRaised,
			FundingStatus: q.FundingStatus,
		})
	}

	for _, e := range events {
		if e.AmountNeeded <= 0 {
			continue
		}
		out = append(out, types.Sponsorship{
			ID:            e.ID,
			Type:          types.SponsorshipEvent,
			Name:          e.Title,
			Description:   e.Description,
			AmountNeeded:  e.AmountNeeded,
			AmountRaised:  e.AmountRaised,
			FundingStatus: e.FundingStatus,
		})
	}

	return out
}
