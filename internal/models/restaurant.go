package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point. Coordinates are always stored as
// (longitude, latitude), in that order.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }

func (p GeoPoint) Latitude() float64 { return p.Coordinates[1] }

// Rating holds the denormalized per-dimension score aggregate for a
// restaurant. It is written only by the rating aggregator, never by
// restaurant updates.
type Rating struct {
	TasteTotal   int64 `bson:"tasteTotal" json:"taste_total"`
	TasteCount   int64 `bson:"tasteCount" json:"taste_count"`
	TextureTotal int64 `bson:"textureTotal" json:"texture_total"`
	TextureCount int64 `bson:"textureCount" json:"texture_count"`
	VirtualTotal int64 `bson:"virtualTotal" json:"virtual_total"`
	VirtualCount int64 `bson:"virtualCount" json:"virtual_count"`
}

// Opening holds opening/closing times as seconds since midnight,
// e.g. 32400 = 9 AM, 37800 = 10.30 AM, max 86399 = 11.59:59 PM.
type Opening struct {
	WorkdayOpen  int `bson:"workdayOpen" json:"workday_open"`
	WorkdayClose int `bson:"workdayClose" json:"workday_close"`
	HolidayOpen  int `bson:"holidayOpen" json:"holiday_open"`
	HolidayClose int `bson:"holidayClose" json:"holiday_close"`
}

// MenuItem is a single entry in a restaurant's menu.
type MenuItem struct {
	Name  string  `bson:"name" json:"name"`
	Image string  `bson:"image,omitempty" json:"image,omitempty"`
	Price float64 `bson:"price" json:"price"`
}

// Restaurant is a top-level entity. Distance is populated only by the
// $geoNear search pipeline and is never persisted.
type Restaurant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Location  GeoPoint           `bson:"location" json:"location"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Images    []string           `bson:"images,omitempty" json:"images,omitempty"`
	Opening   Opening            `bson:"opening" json:"opening"`
	Menu      []MenuItem         `bson:"menu,omitempty" json:"menu,omitempty"`
	Rating    Rating             `bson:"rating" json:"rating"`
	Distance  *float64           `bson:"distance,omitempty" json:"distance,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
