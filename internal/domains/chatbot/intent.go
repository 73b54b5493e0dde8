package chatbot

import (
	"regexp"
	"strings"
	"unicode"
)

// Intent is the classification label for a free-text query.
type Intent string

const (
	IntentHowTo    Intent = "how_to"
	IntentStats    Intent = "stats"
	IntentSummary  Intent = "summary"
	IntentSearch   Intent = "search"
	IntentUnit     Intent = "unit"
	IntentList     Intent = "list"
	IntentGreeting Intent = "greeting"
	IntentHelp     Intent = "help"
	IntentGeneral  Intent = "general"
)

// intentRule pairs an ordered trigger set with an optional parameter
// extractor. Rules are evaluated top to bottom; the first match wins.
type intentRule struct {
	intent   Intent
	triggers []string
	extract  func(query string) string
}

// intentRules is the classification table. The order is load-bearing:
// how_to must come before search and unit, otherwise instructional
// phrasing like "how can I search for a visitor" would be taken as a
// direct search request. Do not reorder.
var intentRules = []intentRule{
	{
		intent: IntentHowTo,
		triggers: []string{
			"how can i", "how do i", "how to", "what are the ways",
			"tell me how", "explain how", "show me how",
		},
	},
	{
		intent: IntentStats,
		triggers: []string{
			"how many", "count", "stats", "statistics", "occupancy",
			"available", "free", "spots", "capacity",
		},
	},
	{
		intent: IntentSummary,
		triggers: []string{
			"status", "summary", "overview", "situation", "full", "busy",
		},
	},
	{
		intent: IntentSearch,
		triggers: []string{
			"search for", "find visitor", "locate visitor",
			"look for visitor", "where is", "is there a visitor",
		},
		extract: extractName,
	},
	{
		intent:   IntentUnit,
		triggers: []string{"unit", "apartment", "flat"},
		extract:  extractUnit,
	},
	{
		intent: IntentList,
		triggers: []string{
			"list", "show all", "display", "view all", "see all", "visitors",
		},
	},
	{
		intent:   IntentGreeting,
		triggers: []string{"hello", "hi", "hey", "greetings"},
	},
	{
		intent:   IntentHelp,
		triggers: []string{"help", "what can you", "how to use"},
	},
}

// Classify maps a query to an intent and an extracted parameter.
// Pure function of the input; safe for concurrent use.
func Classify(query string) (Intent, string) {
	lower := strings.ToLower(query)

	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				param := ""
				if rule.extract != nil {
					param = rule.extract(query)
				}
				return rule.intent, param
			}
		}
	}

	return IntentGeneral, ""
}

// nameStopWords are query words that are never a visitor name.
var nameStopWords = map[string]struct{}{
	"search": {}, "find": {}, "for": {}, "visitor": {}, "named": {},
	"called": {}, "the": {}, "a": {}, "an": {}, "is": {}, "there": {},
	"where": {}, "who": {}, "locate": {}, "how": {}, "can": {}, "i": {},
	"do": {}, "to": {}, "tell": {}, "me": {}, "explain": {}, "show": {},
}

// extractName picks the first token longer than two characters that is
// neither a stop word nor purely numeric. Deliberately naive: with two
// candidate names the first one wins, matching the original behaviour.
func extractName(query string) string {
	for _, word := range strings.Fields(query) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := nameStopWords[strings.ToLower(word)]; stop {
			continue
		}
		if isNumeric(word) {
			continue
		}
		return capitalize(word)
	}
	return ""
}

// unitPattern matches unit numbers like B-1-01, A-74 or B1-09 in the
// upper-cased query.
var unitPattern = regexp.MustCompile(`[A-Z]-?\d+-?\d*`)

// extractUnit tries the unit regex first, then falls back to the first
// token containing both a digit and a letter.
func extractUnit(query string) string {
	if match := unitPattern.FindString(strings.ToUpper(query)); match != "" {
		return match
	}

	for _, word := range strings.Fields(query) {
		if containsDigit(word) && containsLetter(word) {
			return strings.ToUpper(word)
		}
	}
	return ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
