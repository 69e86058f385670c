package output

import "strings"

// Fragment is a piece of linkified text. Link fragments carry a bare URL;
// the rest of the text passes through untouched.
type Fragment struct {
	Text string
	Link bool
}

// trailing punctuation that belongs to the sentence, not the URL.
const trailingPunct = ".,;:!?)'\""

// Linkify splits free text into fragments, marking bare http(s) URLs. It is
// a pure transform: concatenating the fragment texts reproduces the input.
func Linkify(text string) []Fragment {
	var frags []Fragment
	rest := text

	for {
		idx := indexURL(rest)
		if idx < 0 {
			break
		}
		if idx > 0 {
			frags = append(frags, Fragment{Text: rest[:idx]})
		}
		rest = rest[idx:]

		end := strings.IndexFunc(rest, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if end < 0 {
			end = len(rest)
		}
		url := rest[:end]
		url = strings.TrimRight(url, trailingPunct)

		frags = append(frags, Fragment{Text: url, Link: true})
		rest = rest[len(url):]
	}

	if rest != "" {
		frags = append(frags, Fragment{Text: rest})
	}
	return frags
}

func indexURL(s string) int {
	https := strings.Index(s, "https://")
	http := strings.Index(s, "http://")
	switch {
	case https < 0:
		return http
	case http < 0:
		return https
	case http < https:
		return http
	default:
		return https
	}
}

// RenderLinkified renders text with URLs wrapped as OSC 8 terminal
// hyperlinks when enabled, or passed through as plain text otherwise.
func RenderLinkified(text string, hyperlinks bool) string {
	frags := Linkify(text)
	var b strings.Builder
	for _, f := range frags {
		if f.Link && hyperlinks {
			b.WriteString("\x1b]8;;" + f.Text + "\x1b\\" + f.Text + "\x1b]8;;\x1b\\")
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}
