package types

// TravelType categorizes the traveling party inferred from free text.
type TravelType string

const (
	TravelTypeFamily  TravelType = "family"
	TravelTypeSolo    TravelType = "solo"
	TravelTypeCouple  TravelType = "couple"
	TravelTypeUnknown TravelType = "unknown"
)

// String provides a string representation of the travel type
func (t TravelType) String() string {
	return string(t)
}

// Language selects the localization of follow-up questions.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageHindi    Language = "hindi"
)

// TripIntent is the structured representation of a user's trip request,
// extracted from free text. Empty strings and a zero day count stand for
// "not mentioned"; TravelType defaults to unknown.
type TripIntent struct {
	SourceCity      string     `json:"sourceCity"`
	DestinationCity string     `json:"destinationCity"`
	NumberOfDays    int        `json:"numberOfDays"`
	TravelType      TravelType `json:"travelType"`
}

// Complete reports whether the intent carries every field required to build
// an itinerary. Traveler type is optional and may remain unknown.
func (i TripIntent) Complete() bool {
	return i.SourceCity != "" && i.DestinationCity != "" && i.NumberOfDays > 0
}
