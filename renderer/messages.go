package renderer

// MessagesMarkdown renders the status message stream: the latest message as a
// quote line, and the full history underneath when expanded. Oldest first, so
// the history reads like a session transcript.
func MessagesMarkdown(latest string, history []string, expanded bool) string {
	r := newReport()
	if latest == "" {
		r.Printf("No messages yet.\n")
		return r.String()
	}
	r.Printf("> %s\n", latest)
	if !expanded || len(history) == 0 {
		return r.String()
	}
	r.Printf("\n## Message History\n\n")
	for i, msg := range history {
		r.Printf("%d. %s\n", i+1, msg)
	}
	return r.String()
}
