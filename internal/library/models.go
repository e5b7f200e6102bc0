package library

// Movie is a single collection entry. A movie is fully formed at creation:
// every field is populated before the row is written, and only the rating
// may change afterwards.
type Movie struct {
	Title     string
	Year      int
	Rating    float64
	PosterURL string
}

// Attributes holds the non-key fields of a movie as they appear in a
// snapshot.
type Attributes struct {
	Year      int
	Rating    float64
	PosterURL string
}

// Snapshot is a full, point-in-time copy of the collection keyed by exact
// title. It is not a live view; mutations made after List do not propagate
// into an existing snapshot.
type Snapshot map[string]Attributes

// Movie reconstructs the full record for a title present in the snapshot.
func (s Snapshot) Movie(title string) (Movie, bool) {
	attrs, ok := s[title]
	if !ok {
		return Movie{}, false
	}
	return Movie{Title: title, Year: attrs.Year, Rating: attrs.Rating, PosterURL: attrs.PosterURL}, true
}
