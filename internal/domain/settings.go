package domain

// IdentifierType selects which identity document passengers present.
type IdentifierType string

const (
	IdentifierNationalID IdentifierType = "NNI"
	IdentifierPassport   IdentifierType = "Passport"
	IdentifierBoth       IdentifierType = "Both"
)

func (t IdentifierType) Valid() bool {
	switch t {
	case IdentifierNationalID, IdentifierPassport, IdentifierBoth:
		return true
	}
	return false
}

// Label is the user-facing text for the identifier field.
// It is the type itself, except for Both which reads "NNI ou Passport".
func (t IdentifierType) Label() string {
	if t == IdentifierBoth {
		return string(IdentifierNationalID) + " ou " + string(IdentifierPassport)
	}
	return string(t)
}

// Settings is the singleton application configuration record.
type Settings struct {
	PassengerIdentifierType  IdentifierType `json:"passengerIdentifierType"`
	PassengerIdentifierLabel string         `json:"passengerIdentifierLabel"`
}

// SettingsPatch is a partial settings update; nil fields are kept.
type SettingsPatch struct {
	PassengerIdentifierType  *IdentifierType `json:"passengerIdentifierType,omitempty"`
	PassengerIdentifierLabel *string         `json:"passengerIdentifierLabel,omitempty"`
}

// DefaultSettings returns the built-in settings record.
func DefaultSettings() Settings {
	return Settings{
		PassengerIdentifierType:  IdentifierBoth,
		PassengerIdentifierLabel: IdentifierBoth.Label(),
	}
}

// Merge returns s with the non-nil fields of patch applied.
func (s Settings) Merge(patch SettingsPatch) Settings {
	if patch.PassengerIdentifierType != nil {
		s.PassengerIdentifierType = *patch.PassengerIdentifierType
	}
	if patch.PassengerIdentifierLabel != nil {
		s.PassengerIdentifierLabel = *patch.PassengerIdentifierLabel
	}
	return s
}
