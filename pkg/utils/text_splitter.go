package utils

// SplitText cuts text into rune-based chunks of at most chunkSize, with
// consecutive chunks sharing overlap runes at the seam so context survives
// the boundary. Character counting is a rough proxy for tokens; callers
// should size chunks well under their model's context window.
func SplitText(text string, chunkSize, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		// An overlap that swallows the whole chunk would loop forever.
		step = chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
