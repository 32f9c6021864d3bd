package models

// Movie is a catalog item assembled from search enrichment or the built-in
// sample catalog. Movies are transient: rebuilt on every search, never stored.
type Movie struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Genre    string `json:"genre"`
	Director string `json:"director"`
	Poster   string `json:"poster"`
}
