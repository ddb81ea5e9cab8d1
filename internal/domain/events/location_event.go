// Package events records where a component of a tool kit has been built,
// promoted or shipped.
package events

import (
	"strings"
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// Location is a place a component build can be in.
type Location string

// Known locations, in promotion order
const (
	LocationBuild Location = "BUILD"
	LocationDev   Location = "DEV"
	LocationTK    Location = "TK"
	LocationShip  Location = "SHIP"
	LocationProd  Location = "PROD"
)

// ParseLocation converts user input into a Location.
func ParseLocation(value string) (Location, bool) {
	l := Location(strings.ToUpper(strings.TrimSpace(value)))
	switch l {
	case LocationBuild, LocationDev, LocationTK, LocationShip, LocationProd:
		return l, true
	default:
		return l, false
	}
}

// LocationEvent records one event (e.g. BUILD_SUCCESS, ADVANCE_START) for a
// component of a tool kit at a location.
type LocationEvent struct {
	ID            string   `validate:"required,uuid4"`
	ToolKitName   string   `validate:"required,version"`
	ComponentName string   `validate:"required,etreename"`
	Location      Location `validate:"required,oneof=BUILD DEV TK SHIP PROD"`
	Event         string   `validate:"required,etreename,max=64"`
	Message       string   `validate:"max=1024"`
	User          string   `validate:"required,login"`
	CreatedAt     time.Time
}

// Validate for validating LocationEvent struct
func (e *LocationEvent) Validate() error {
	return validators.Struct(e)
}

// EventQuery filters event listings. Limit <= 0 means no limit.
type EventQuery struct {
	ToolKitName   string
	ComponentName string
	Location      Location
	Limit         int
}
