package lookup

import (
	"fmt"

	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
)

// ShareTitle is the title passed to the share capability
func ShareTitle(snapshot *weather.Snapshot) string {
	if snapshot.City == "" {
		return fmt.Sprintf("Weather in %s", snapshot.Location())
	}
	return fmt.Sprintf("Weather in %s", snapshot.City)
}

// ShareText is the one-line summary shared for a snapshot
func ShareText(snapshot *weather.Snapshot, unit units.Unit) string {
	return fmt.Sprintf("Current weather in %s: %s, %s. Check it out!",
		snapshot.Location(), snapshot.Condition.Description, units.Format(snapshot.Temperature, unit))
}
