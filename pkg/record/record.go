// Package record defines the unit of content for one calendar date in the
// astronomy picture feed.
package record

// MediaType selects the rendering path for a record's URL.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// DefaultAttribution is used when upstream supplies no copyright holder.
const DefaultAttribution = "Public Domain / NASA"

// Record is one day's content item. Records are created by the gateway on a
// successful fetch and replaced wholesale, never mutated in place.
type Record struct {
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Explanation string    `json:"explanation"`
	URL         string    `json:"url"`
	MediaType   MediaType `json:"media_type"`
	Copyright   string    `json:"copyright,omitempty"`
}

// Attribution returns the copyright holder, falling back to the default owner
// when upstream omitted one.
func (r *Record) Attribution() string {
	if r.Copyright == "" {
		return DefaultAttribution
	}
	return r.Copyright
}

// IsVideo reports whether the record must be shown through an embeddable
// player rather than displayed directly.
func (r *Record) IsVideo() bool {
	return r.MediaType == MediaTypeVideo
}

// Clone returns an independent copy, used when snapshotting a record into the
// bookmark store.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
