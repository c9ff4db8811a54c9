package seed

import (
	"context"
	"fmt"

	"github.com/justicekonjengbam/DreamWorld-sub000/internal/store"

	"github.com/k0kubun/pp"
)

var roles = []store.RoleRecord{
	{
		Name:        "Weavers",
		Singular:    "Weaver",
		Description: "Storytellers who bind the community together.",
		Color:       "#7c5cff",
		Traits:      "creative\nempathetic\ncurious",
		Philosophy:  "Every thread matters.",
		IsExclusive: false,
	},
	{
		Name:        "Wardens",
		Singular:    "Warden",
		Description: "Organizers who keep quests and events on track.",
		Color:       "#2f9e62",
		Traits:      "reliable\npractical\ncalm",
		Philosophy:  "Dreams need scaffolding.",
		IsExclusive: false,
	},
	{
		Name:        "Luminaries",
		Singular:    "Luminary",
		Description: "Founding members with a guiding voice.",
		Color:       "#e8a33d",
		Traits:      "visionary\ngenerous",
		Philosophy:  "Light the way, then step aside.",
		IsExclusive: true,
	},
}

type roleUpserter interface {
	Upsert(ctx context.Context, rec *store.RoleRecord) error
}

func SeedRoles(ctx context.Context, repo roleUpserter) error {
	for i := range roles {
		role := roles[i]
		if err := repo.Upsert(ctx, &role); err != nil {
			return fmt.Errorf("seed role %q: %w", role.Name, err)
		}
		pp.Println(role.Name, role.ID)
	}

	return nil
}
