package workload

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type SportCategory string

const (
	CategoryEndurance SportCategory = "endurance"
	CategoryStrength  SportCategory = "strength"
	CategoryTeam      SportCategory = "team"
	CategorySkill     SportCategory = "skill"
)

// SportProfile holds the sport-specific thresholds of the metrics engine.
type SportProfile struct {
	Name             string        `yaml:"name" json:"name"`
	Aliases          []string      `yaml:"aliases" json:"aliases,omitempty"`
	LoadMultiplier   float64       `yaml:"load_multiplier" json:"loadMultiplier"`
	BaseRisk         float64       `yaml:"base_risk" json:"baseRisk"`
	OvertrainingACWR float64       `yaml:"overtraining_acwr" json:"overtrainingAcwr"`
	PeakRecoveryMin  float64       `yaml:"peak_recovery_min" json:"peakRecoveryMin"`
	PeakAgeMin       int           `yaml:"peak_age_min" json:"peakAgeMin"`
	PeakAgeMax       int           `yaml:"peak_age_max" json:"peakAgeMax"`
	Category         SportCategory `yaml:"category" json:"category"`
}

type SportProfiles struct {
	Default SportProfile   `yaml:"default"`
	Sports  []SportProfile `yaml:"sports"`

	byName map[string]SportProfile
}

//go:embed sports.yaml
var sportsYaml []byte

var defaultProfiles = mustLoadProfiles(sportsYaml)

func mustLoadProfiles(raw []byte) *SportProfiles {
	p, err := ParseSportProfiles(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func ParseSportProfiles(raw []byte) (*SportProfiles, error) {
	var profiles SportProfiles
	if err := yaml.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("unmarshal sport profiles: %w", err)
	}
	if profiles.Default.LoadMultiplier <= 0 {
		return nil, fmt.Errorf("default sport profile must have a positive load multiplier")
	}

	profiles.byName = make(map[string]SportProfile)
	for _, sp := range profiles.Sports {
		if sp.LoadMultiplier <= 0 {
			return nil, fmt.Errorf("sport [%s]: load multiplier must be positive", sp.Name)
		}
		profiles.byName[normalizeSport(sp.Name)] = sp
		for _, alias := range sp.Aliases {
			profiles.byName[normalizeSport(alias)] = sp
		}
	}
	return &profiles, nil
}

// Lookup is case-insensitive over sport names and aliases, falling back to the default profile.
func (p *SportProfiles) Lookup(sport string) SportProfile {
	if sp, ok := p.byName[normalizeSport(sport)]; ok {
		return sp
	}
	return p.Default
}

// Canonical maps a sport name or alias to its profile name. Unknown sports are
// returned trimmed but otherwise as given.
func (p *SportProfiles) Canonical(sport string) string {
	if sp, ok := p.byName[normalizeSport(sport)]; ok {
		return sp.Name
	}
	return strings.TrimSpace(sport)
}

// CanonicalSport uses the embedded sports table.
func CanonicalSport(sport string) string {
	return defaultProfiles.Canonical(sport)
}

// LookupSport uses the embedded sports table.
func LookupSport(sport string) SportProfile {
	return defaultProfiles.Lookup(sport)
}

// Sports lists the embedded sport profiles.
func Sports() []SportProfile {
	return defaultProfiles.Sports
}

func normalizeSport(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
