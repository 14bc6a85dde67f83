package model

import (
	"encoding/json"
	"fmt"
)

// Place - place record.
type Place struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	OwnerID      string    `json:"owner_id,omitempty"`
	Owner        *User     `json:"owner,omitempty"`
	Amenities    Amenities `json:"amenities"`
	ReviewsCount int       `json:"reviews_count,omitempty"`
	CreatedAt    string    `json:"created_at,omitempty"`
	UpdatedAt    string    `json:"updated_at,omitempty"`
}

// Amenities — список удобств. API отдаёт либо строки (id), либо объекты {id, name}.
type Amenities []string

// UnmarshalJSON accepts both shapes; for objects the name wins over the id.
func (a *Amenities) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Amenities, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			return fmt.Errorf("amenity: %w", err)
		}
		if obj.Name != "" {
			out = append(out, obj.Name)
		} else {
			out = append(out, obj.ID)
		}
	}
	*a = out
	return nil
}

// FilterByMaxPrice returns places priced at or below max. A non-positive max keeps everything.
func FilterByMaxPrice(places []Place, max float64) []Place {
	if max <= 0 {
		return places
	}
	res := make([]Place, 0, len(places))
	for _, p := range places {
		if p.Price <= max {
			res = append(res, p)
		}
	}
	return res
}
