package domain

import "time"

// Property is a physical location. It exists independently of listings so the
// same place can be re-listed over time without re-entering its details.
type Property struct {
	ID                     int64     `json:"id" gorm:"primaryKey"`
	Address                string    `json:"address" gorm:"not null"`
	Latitude               *float64  `json:"latitude,omitempty"`
	Longitude              *float64  `json:"longitude,omitempty"`
	LandmarkName           *string   `json:"landmark_name,omitempty"`
	DirectionsFromLandmark *string   `json:"directions_from_landmark,omitempty"`
	CreatedByUserID        int64     `json:"created_by_user_id"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the property carries a usable geo point.
// Properties without coordinates never match a geo radius filter.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
