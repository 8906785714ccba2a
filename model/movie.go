package model

import "encoding/json"

type Movie struct {
	ID       string
	Title    string
	Genre    string
	Duration string
	Language string
	Poster   string
	Active   bool
}

func (m *Movie) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	m.ID = pickID(obj, "id", "movieId", "movie_id")
	m.Title = pickString(obj, "title", "name")
	m.Genre = pickString(obj, "genre", "type")
	m.Duration = pickString(obj, "duration")
	m.Language = pickString(obj, "language")
	m.Poster = pickString(obj, "poster", "posterUrl", "image", "poster_path")
	// Absent means listed: only an explicit active=false hides a movie.
	m.Active = true
	if raw, ok := firstRaw(obj, "active"); ok {
		_ = json.Unmarshal(raw, &m.Active)
	}
	return nil
}

func (m Movie) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Genre    string `json:"genre,omitempty"`
		Duration string `json:"duration,omitempty"`
		Language string `json:"language,omitempty"`
		Poster   string `json:"poster,omitempty"`
		Active   bool   `json:"active"`
	}
	return json.Marshal(wire{
		ID:       m.ID,
		Title:    m.Title,
		Genre:    m.Genre,
		Duration: m.Duration,
		Language: m.Language,
		Poster:   m.Poster,
		Active:   m.Active,
	})
}
