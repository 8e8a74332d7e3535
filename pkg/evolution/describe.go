package evolution

import (
	"fmt"
	"strings"

	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// StartLabel describes the zero detail of a chain's root.
const StartLabel = "(start)"

// Describe renders a condition set as a short, comma separated summary such
// as "level-up, lvl 16" or "use-item, item: thunder-stone".
func Describe(d pokeapi.EvolutionDetail) string {
	if d.IsZero() {
		return StartLabel
	}

	trigger := "level-up"
	if d.Trigger != nil && d.Trigger.Name != "" {
		trigger = d.Trigger.Name
	}
	parts := []string{trigger}

	if d.MinLevel != nil {
		parts = append(parts, fmt.Sprintf("lvl %d", *d.MinLevel))
	}
	if d.Item != nil {
		parts = append(parts, "item: "+d.Item.Name)
	}
	if d.HeldItem != nil {
		parts = append(parts, "held: "+d.HeldItem.Name)
	}
	if d.KnownMove != nil {
		parts = append(parts, "move: "+d.KnownMove.Name)
	}
	if d.KnownMoveType != nil {
		parts = append(parts, "type: "+d.KnownMoveType.Name)
	}
	if d.MinHappiness != nil && *d.MinHappiness != 0 {
		parts = append(parts, fmt.Sprintf("happiness≥%d", *d.MinHappiness))
	}
	if d.MinBeauty != nil && *d.MinBeauty != 0 {
		parts = append(parts, fmt.Sprintf("beauty≥%d", *d.MinBeauty))
	}
	if d.Location != nil {
		parts = append(parts, "loc: "+d.Location.Name)
	}
	if d.TimeOfDay != "" {
		parts = append(parts, "time: "+d.TimeOfDay)
	}
	if d.TradeSpecies != nil {
		parts = append(parts, "trade:"+d.TradeSpecies.Name)
	}
	return strings.Join(parts, ", ")
}
