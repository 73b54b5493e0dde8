package chatbot

import (
	"fmt"
	"strings"
)

// Templated replies. These never touch the generative model, so they work
// even when no credential is configured.

const greetingReply = `👋 Hello! I'm your parking assistant. I can help you with:
• Checking parking availability
• Finding specific visitors
• Viewing visitor lists
• Searching by unit number

What would you like to know?`

const helpReply = `🤖 How I can help you:

📊 Check Statistics:
• "How many visitors are parked?"
• "What's the parking status?"
• "How many spots available?"

🔍 Search Visitors:
• "Find visitor John"
• "Search for visitor named Alice"
• "Is there a visitor called Mike?"

📋 View Lists:
• "Show all visitors"
• "List all parked cars"

🏢 Search by Unit:
• "Show visitors for unit B-1-01"
• "Who visited unit A-74?"

Just ask naturally!`

const howToSearchReply = `🔍 How to Search for Visitors:

1. By Name: Ask me "Find visitor [Name]" or "Search for [Name]"
   - Example: "Find visitor John"

2. By License Plate: Use the search bar on the "View All Visitors" page

3. By Unit Number: Ask me "Show visitors for unit [Unit#]"
   - Example: "Show visitors for unit B-1-01"

Just ask me naturally and I'll help you find who you're looking for! 😊`

const howToUnitReply = `🏢 How to Find Visitors by Unit:

1. Ask me directly: "Show visitors for unit [Unit Number]"
   - Example: "Show visitors for unit B-1-01"
   - Example: "Who visited unit A-74?"

2. Use the view page: filter the visitor list by unit number

I'll show you the name, license plate, and status of all visitors for that unit! 🚗`

const howToGeneralReply = `💡 General Instructions:

I can help you with:
• Searching visitors - Ask "How can I search for visitors?"
• Finding by unit - Ask "How to find visitors by unit?"
• Checking availability - Ask "How many spots are available?"
• Viewing lists - Just say "Show all visitors"

What would you like to know? 😊`

const searchParamMissingReply = `🔍 Please specify a visitor name. Example: 'Find visitor John'`

const unitParamMissingReply = `🏢 Please specify a unit number. Example: 'Show visitors for unit B-1-01'`

const unavailableReply = `⚠️ Assistant unavailable. Please configure the generative backend credential.`

const apologeticReply = `😔 Sorry, I ran into a problem answering that. Please try again in a moment.`

const generalContext = `I can help with visitor info, parking stats, and searching. ` +
	`Please ask about visitors, parking availability, or specific units.`

// howToReply picks the instructional sub-case by secondary substring
// checks, evaluated in search/find → unit → general order.
func howToReply(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "search") || strings.Contains(lower, "find"):
		return howToSearchReply
	case strings.Contains(lower, "unit"):
		return howToUnitReply
	default:
		return howToGeneralReply
	}
}

// buildPrompt embeds the dispatcher's deterministic text as context for
// the model. The contract is explicit: reproduce all provided data, never
// summarize or omit entries.
func buildPrompt(context, query string) string {
	return fmt.Sprintf(`You are a friendly parking management assistant. Respond naturally and helpfully.

IMPORTANT: When you have visitor data, you MUST display it completely. Never summarize or say "followed by..." - always show the full list.

Context/Data: %s

User Question: %s

Instructions:
- If context contains visitor information, display ALL of it in a clear, readable format
- Use bullet points or numbered lists for multiple visitors
- Include all details provided (name, IC, plate, unit, status)
- Be concise but COMPLETE - never truncate or summarize the data
- If no data is available, say so clearly

Provide your response:`, context, query)
}
