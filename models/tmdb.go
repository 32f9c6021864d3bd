package models

// Boundary schemas for the TMDB API. Fields absent from a response decode to
// zero values and are defaulted by the enrichment layer, never passed through
// raw.

type TMDBSearchResponse struct {
	Page    int                `json:"page"`
	Results []TMDBSearchResult `json:"results"`
}

type TMDBSearchResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	GenreIDs    []int  `json:"genre_ids"`
}

type TMDBCreditsResponse struct {
	ID   int64            `json:"id"`
	Crew []TMDBCrewMember `json:"crew"`
}

type TMDBCrewMember struct {
	Job  string `json:"job"`
	Name string `json:"name"`
}

type TMDBGenreListResponse struct {
	Genres []TMDBGenre `json:"genres"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
