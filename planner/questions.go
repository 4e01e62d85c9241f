package planner

import "github.com/TripMitra/trip-mitra-backend/types"

// maxFollowUpQuestions caps how many clarifying questions are put to the
// user in a single turn.
const maxFollowUpQuestions = 2

// TravelQuestions is a fixed catalog of guidance questions for chat-style
// onboarding flows.
var TravelQuestions = []string{
	"What is your source city?",
	"What is your destination city?",
	"How many days do you plan to travel?",
	"Who are you traveling with? (family, solo, couple, etc.)",
	"What is your preferred mode of transport?",
	"Do you have any specific interests or activities in mind?",
	"What is your approximate budget?",
}

type questionCatalog struct {
	source      string
	destination string
	days        string
}

var questionCatalogs = map[types.Language]questionCatalog{
	types.LanguageEnglish: {
		source:      "Where are you traveling from? (Source city)",
		destination: "Where do you want to go? (Destination city)",
		days:        "How many days will you travel for?",
	},
	types.LanguageHinglish: {
		source:      "Kahan se travel kar rahe ho? (Source city)",
		destination: "Kahan jaana hai? (Destination city)",
		days:        "Kitne din ke liye travel karna hai?",
	},
	types.LanguageHindi: {
		source:      "आप कहाँ से यात्रा कर रहे हैं? (शहर)",
		destination: "आप कहाँ जाना चाहते हैं? (शहर)",
		days:        "आप कितने दिनों के लिए यात्रा करेंगे?",
	},
}

// FollowUpQuestions returns up to two localized clarifying questions for the
// required fields still missing from the intent, checked in fixed order:
// source, destination, days. Traveler type is never asked as a blocking
// question. An unrecognized language falls back to English.
func FollowUpQuestions(intent types.TripIntent, language types.Language) []string {
	catalog, ok := questionCatalogs[language]
	if !ok {
		catalog = questionCatalogs[types.LanguageEnglish]
	}

	questions := make([]string, 0, maxFollowUpQuestions)
	if intent.SourceCity == "" {
		questions = append(questions, catalog.source)
	}
	if intent.DestinationCity == "" && len(questions) < maxFollowUpQuestions {
		questions = append(questions, catalog.destination)
	}
	if intent.NumberOfDays == 0 && len(questions) < maxFollowUpQuestions {
		questions = append(questions, catalog.days)
	}

	return questions
}
