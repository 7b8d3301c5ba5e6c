package rig

import (
	"fmt"
	"strings"
)

// PartID indexes the body-part nodes of the rig. Parents always have a
// lower PartID than their children.
type PartID int

const (
	Root PartID = iota
	Spine
	Chest
	Head
	ArmL
	ArmR
	Hip
	LegL
	LegR

	PartCount int = iota
)

var partNames = [PartCount]string{
	Root:  "Root",
	Spine: "Spine",
	Chest: "Chest",
	Head:  "Head",
	ArmL:  "ArmL",
	ArmR:  "ArmR",
	Hip:   "Hip",
	LegL:  "LegL",
	LegR:  "LegR",
}

func (p PartID) String() string {
	if p < 0 || int(p) >= PartCount {
		return fmt.Sprintf("PartID(%d)", int(p))
	}
	return partNames[p]
}

// ParsePartID resolves a case-insensitive part name.
func ParsePartID(s string) (PartID, error) {
	for i, name := range partNames {
		if strings.EqualFold(name, s) {
			return PartID(i), nil
		}
	}
	return 0, fmt.Errorf("rig: unknown part %q", s)
}
