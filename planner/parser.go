// Package planner implements the deterministic trip-planning pipeline:
// free-text intent parsing, follow-up question selection, itinerary template
// generation, and flight/hotel heuristics. Everything in this package is
// pure and side-effect-free, safe for concurrent use without locking.
package planner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/TripMitra/trip-mitra-backend/types"
)

// City patterns capture one or two lowercase words. Longer city names are
// truncated to the first two matched words.
var (
	fromToPattern      = regexp.MustCompile(`from\s+([a-z]+(?:\s+[a-z]+)?)\s+to\s+([a-z]+(?:\s+[a-z]+)?)`)
	fromPattern        = regexp.MustCompile(`from\s+([a-z]+(?:\s+[a-z]+)?)`)
	destinationPattern = regexp.MustCompile(`(?:to|trip to|travel to)\s+([a-z]+(?:\s+[a-z]+)?)`)
	daysPattern        = regexp.MustCompile(`(\d+)[\s-]*(days?|din)`)
)

// connectives are words that can trail a greedy two-word city capture when the
// sentence continues ("trip to goa from mumbai" captures "goa from"). A
// trailing connective is never part of a city name, so it is stripped.
var connectives = map[string]bool{
	"from": true, "to": true, "for": true, "in": true, "on": true,
	"at": true, "with": true, "and": true, "se": true, "mein": true,
	"ke": true, "ki": true, "ka": true,
}

// Keyword sets for traveler-type classification, covering English, Hinglish,
// and Hindi terms. Family is checked first, then solo, then couple; the first
// set with a match wins.
var (
	familyKeywords = []string{
		"parents", "family", "kids", "children", "saath",
		"with family", "with parents", "bacche", "bachchon", "maa", "papa",
	}
	soloKeywords = []string{
		"solo", "alone", "by myself", "akela", "akeli",
	}
	coupleKeywords = []string{
		"couple", "partner", "wife", "husband",
		"girlfriend", "boyfriend", "saathi", "patni", "pati",
	}
)

// ParseTravelInput extracts a structured TripIntent from a free-text travel
// request. It never fails: unmatched fields are left at their zero values and
// the travel type defaults to unknown.
func ParseTravelInput(inputText string) types.TripIntent {
	intent := types.TripIntent{TravelType: types.TravelTypeUnknown}
	if inputText == "" {
		return intent
	}
	text := strings.ToLower(inputText)

	intent.SourceCity, intent.DestinationCity = extractCities(text)
	intent.NumberOfDays = extractDayCount(text)
	intent.TravelType = classifyTravelType(text)

	return intent
}

// extractCities runs the city matchers in priority order: an explicit
// "from X to Y" wins outright; otherwise source and destination are recovered
// independently from "from X" and "to Y"/"trip to Y"/"travel to Y" clauses.
func extractCities(text string) (source, destination string) {
	if m := fromToPattern.FindStringSubmatch(text); m != nil {
		return cleanCity(m[1]), cleanCity(m[2])
	}

	if m := fromPattern.FindStringSubmatch(text); m != nil {
		source = cleanCity(m[1])
	}
	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		destination = cleanCity(m[1])
	}
	return source, destination
}

// extractDayCount returns the first digit run immediately followed by a day
// unit ("days", "day", or Hindi "din"), or 0 when none is present. Numbers
// written as words are not recognized.
func extractDayCount(text string) int {
	m := daysPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	days, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return days
}

// classifyTravelType tests the keyword sets in fixed order. A sentence that
// mentions both family and solo terms resolves to family because family is
// checked first.
func classifyTravelType(text string) types.TravelType {
	if containsAny(text, familyKeywords) {
		return types.TravelTypeFamily
	}
	if containsAny(text, soloKeywords) {
		return types.TravelTypeSolo
	}
	if containsAny(text, coupleKeywords) {
		return types.TravelTypeCouple
	}
	return types.TravelTypeUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// cleanCity trims a captured city and drops a trailing connective picked up
// by the greedy two-word capture.
func cleanCity(city string) string {
	city = strings.TrimSpace(city)
	if idx := strings.IndexByte(city, ' '); idx != -1 {
		if connectives[city[idx+1:]] {
			city = city[:idx]
		}
	}
	return city
}
