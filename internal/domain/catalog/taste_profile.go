package catalog

import (
	"fmt"

	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
)

// TasteProfile is a value object describing a coffee flavor preference.
// Only the predefined profiles are valid; anything else is rejected at
// construction time.
type TasteProfile string

const (
	TasteProfileSweetMild        TasteProfile = "sweet_mild"
	TasteProfileBrightFruity     TasteProfile = "bright_fruity"
	TasteProfileBoldFullBodied   TasteProfile = "bold_full_bodied"
	TasteProfileBalancedComplete TasteProfile = "balanced_complete"
)

// AllTasteProfiles returns every valid profile, in a stable order.
// Used by clients to populate selection lists.
func AllTasteProfiles() []TasteProfile {
	return []TasteProfile{
		TasteProfileSweetMild,
		TasteProfileBrightFruity,
		TasteProfileBoldFullBodied,
		TasteProfileBalancedComplete,
	}
}

// NewTasteProfile validates and returns a taste profile
func NewTasteProfile(value string) (TasteProfile, error) {
	p := TasteProfile(value)
	if !p.IsValid() {
		return "", shared.NewDomainError("INVALID_TASTE_PROFILE",
			fmt.Sprintf("Taste profile '%s' does not exist", value))
	}
	return p, nil
}

// IsValid checks if the taste profile is one of the predefined profiles
func (p TasteProfile) IsValid() bool {
	switch p {
	case TasteProfileSweetMild, TasteProfileBrightFruity,
		TasteProfileBoldFullBodied, TasteProfileBalancedComplete:
		return true
	}
	return false
}

// String returns the string representation of the profile
func (p TasteProfile) String() string {
	return string(p)
}

// DisplayName returns a human-readable name for the profile
func (p TasteProfile) DisplayName() string {
	switch p {
	case TasteProfileSweetMild:
		return "Sweet and Mild"
	case TasteProfileBrightFruity:
		return "Bright and Fruity"
	case TasteProfileBoldFullBodied:
		return "Bold and Full-Bodied"
	case TasteProfileBalancedComplete:
		return "Balanced and Complete"
	}
	return string(p)
}

// Recommendations returns the coffee styles suggested for this profile
func (p TasteProfile) Recommendations() []string {
	switch p {
	case TasteProfileSweetMild:
		return []string{"Caramel-note coffee", "Natural process coffee"}
	case TasteProfileBrightFruity:
		return []string{"Citric-acidity coffee", "Washed process coffee", "Floral coffees"}
	case TasteProfileBoldFullBodied:
		return []string{"Medium-dark roast coffee", "Cocoa-note coffee"}
	case TasteProfileBalancedComplete:
		return []string{"Vanilla-note coffees", "Honey process coffee"}
	}
	return nil
}
