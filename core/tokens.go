package core

// EstimateTokens gives a rough token count for text, using the common
// ~4 characters per token approximation. Good enough for budgeting, not
// for billing.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n < 1 {
		return 1
	}
	return n
}

// estimateMessageTokens sums the token estimate over a message's parts.
func estimateMessageTokens(m Message) int {
	total := 0
	for _, p := range m.ContentParts() {
		if t, ok := p.(TextPart); ok {
			total += EstimateTokens(t.Text)
		}
	}
	return total
}

// TruncateMessages drops oldest messages until the estimated token count
// fits within budget. The final message is always considered first, so a
// conversation never loses its most recent turn while older context does
// fit. Returns a new slice; the input is not modified.
func TruncateMessages(messages []Message, budget int) []Message {
	if len(messages) == 0 {
		return messages
	}

	var kept []Message
	total := 0

	last := messages[len(messages)-1]
	if lastTokens := estimateMessageTokens(last); lastTokens < budget {
		kept = append(kept, last)
		total += lastTokens
	}

	for i := len(messages) - 2; i >= 0; i-- {
		msgTokens := estimateMessageTokens(messages[i])
		if total+msgTokens > budget {
			break
		}
		kept = append([]Message{messages[i]}, kept...)
		total += msgTokens
	}

	return kept
}
