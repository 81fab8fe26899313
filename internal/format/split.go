package format

import (
	"strings"
	"unicode/utf8"
)

// DiscordLimit is the maximum length of a Discord message.
const DiscordLimit = 2000

// Split cuts text into chunks of at most limit bytes, breaking on line
// boundaries. A line longer than a chunk is hard-cut on a rune boundary. An
// open code fence is closed at the end of a chunk and reopened in the next.
func Split(text string, limit int) []string {
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		cur    strings.Builder
		inCode bool
	)
	// room kept for closing a fence that spans chunks
	budget := limit - len(codeFence) - 1

	flush := func() {
		chunk := strings.TrimRight(cur.String(), "\n")
		cur.Reset()
		if chunk == "" || chunk == codeFence {
			return
		}
		if inCode {
			chunk += "\n" + codeFence
		}
		chunks = append(chunks, chunk)
		if inCode {
			cur.WriteString(codeFence + "\n")
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if cur.Len()+len(line)+1 > budget {
			flush()
		}
		for cur.Len()+len(line)+1 > budget {
			n := cutPoint(line, budget-cur.Len()-1)
			if n == 0 {
				break
			}
			cur.WriteString(line[:n])
			cur.WriteString("\n")
			line = line[n:]
			flush()
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.Count(line, codeFence)%2 == 1 {
			inCode = !inCode
		}
	}

	inCode = false
	flush()
	return chunks
}

func cutPoint(s string, n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(s) {
		return len(s)
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
