package record

import "regexp"

// Video URLs from upstream come in watch, embed, and short-link shapes. The
// player only needs the eleven character id.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
}

// VideoID extracts the embeddable player id from a video URL. The second
// return is false when the URL matches none of the known shapes.
func VideoID(url string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}
