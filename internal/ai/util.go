package ai

import "strings"

// Discord message ceiling is 2000 chars, leave room for the truncation note.
const maxReplyLen = 1900

func isGarbageResponse(s string) bool {
	l := strings.ToLower(s)

	if strings.Contains(l, "<html") {
		return true
	}
	if len(strings.TrimSpace(s)) == 0 {
		return true
	}
	return false
}

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}

// CleanReply trims whitespace, strips a wrapping quote pair, and caps the
// reply to something Discord will accept.
func CleanReply(reply string) string {
	reply = strings.TrimSpace(reply)

	if len(reply) >= 2 {
		quotes := []struct{ open, close string }{
			{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"},
		}
		for _, q := range quotes {
			if strings.HasPrefix(reply, q.open) && strings.HasSuffix(reply, q.close) {
				reply = strings.TrimSuffix(strings.TrimPrefix(reply, q.open), q.close)
				reply = strings.TrimSpace(reply)
				break
			}
		}
	}

	if len(reply) > maxReplyLen {
		reply = reply[:maxReplyLen] + "\n\n[truncated]"
	}
	return reply
}
