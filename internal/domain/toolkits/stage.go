package toolkits

import "strings"

// Stage is the lifecycle phase of a tool kit.
type Stage string

// Tool kit stages in lifecycle order
const (
	StageDevelopment Stage = "DEVELOPMENT"
	StagePreview     Stage = "PREVIEW"
	StageReady       Stage = "READY"
	StageShip        Stage = "SHIP"
	StageProduction  Stage = "PRODUCTION"
	StageExtinct     Stage = "XTINCT"
)

// Stages lists every stage in lifecycle order.
func Stages() []Stage {
	return []Stage{StageDevelopment, StagePreview, StageReady, StageShip, StageProduction, StageExtinct}
}

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	for _, stage := range Stages() {
		if s == stage {
			return true
		}
	}
	return false
}

// ParseStage converts user input such as "dev" or "production" into a Stage.
func ParseStage(value string) (Stage, bool) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v == "DEV" {
		return StageDevelopment, true
	}
	s := Stage(v)
	return s, s.IsValid()
}
