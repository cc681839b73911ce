package models

type Artist struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Image        string              `json:"image"`
	Bio          string              `json:"bio,omitempty"`
	Members      []string            `json:"members"`
	CreationDate int                 `json:"creationDate"`
	FirstAlbum   string              `json:"firstAlbum"`
	Locations    []string            `json:"locations,omitempty"`
	ConcertDates []string            `json:"concertDates,omitempty"`
	Relations    map[string][]string `json:"relations,omitempty"`
}

type Favorite struct {
	ID       int    `json:"id"`
	ArtistID int    `json:"artistId"`
	Artist   Artist `json:"artist"`
}

type AddFavoriteRequest struct {
	ArtistID int `json:"artistId"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResult struct {
	Results   []Artist `json:"results"`
	Count     int      `json:"count"`
	Query     string   `json:"query"`
	AIPowered bool     `json:"ai_powered,omitempty"`
}
