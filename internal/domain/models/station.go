package models

import (
	"fmt"
	"strings"
)

// Station is immutable identity referenced by trains. Codes are stored
// uppercased and assumed unique across the catalog.
type Station struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	City          string `json:"city"`
	State         string `json:"state"`
	PlatformCount int    `json:"platformCount"`
}

func NewStation(code, name, city, state string, platformCount int) Station {
	if platformCount < 0 {
		platformCount = 0
	}
	return Station{
		Code:          strings.ToUpper(strings.TrimSpace(code)),
		Name:          strings.TrimSpace(name),
		City:          strings.TrimSpace(city),
		State:         strings.TrimSpace(state),
		PlatformCount: platformCount,
	}
}

func (s Station) FullDescription() string {
	return fmt.Sprintf("%s (%s), %s, %s", s.Name, s.Code, s.City, s.State)
}
