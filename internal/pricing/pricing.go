package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pricing carries every dollar amount the derivation engine and the
// document builder depend on. It is loaded once at startup and injected
// as a value, so alternate price lists can be exercised in tests without
// touching business logic.
type Pricing struct {
	// Flat deposit for music and booth orders, in USD.
	DepositMusicBooth float64 `yaml:"deposit_music_booth"`
	// DJ orders split the total; 0.5 means a 50/50 split.
	DepositDJPercent float64 `yaml:"deposit_dj_percent"`

	AddonSpeaker    float64 `yaml:"addon_speaker"`
	AddonEarlySetup float64 `yaml:"addon_early_setup"`
	AddonBranding   float64 `yaml:"addon_branding"`

	SoundUpgrade float64 `yaml:"sound_upgrade"`

	SameDayChangeFee float64 `yaml:"same_day_change_fee"`
	DateChangeFee    float64 `yaml:"date_change_fee"`
	OutdoorTentFee   float64 `yaml:"outdoor_tent_fee"`
}

func Default() Pricing {
	return Pricing{
		DepositMusicBooth: 125,
		DepositDJPercent:  0.5,
		AddonSpeaker:      25,
		AddonEarlySetup:   50,
		AddonBranding:     75,
		SoundUpgrade:      150,
		SameDayChangeFee:  100,
		DateChangeFee:     50,
		OutdoorTentFee:    150,
	}
}

// Load returns the default price list, overridden by the YAML file at
// path when one is configured.
func Load(path string) (Pricing, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read pricing file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse pricing file: %w", err)
	}
	return p, nil
}
