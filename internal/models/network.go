package models

import (
	"time"
)

// RoadNetwork is one immutable snapshot of a named road network at a
// specific version, scoped to a customer. A logical network is the set of
// rows sharing (customer_id, name); the current version is the row with the
// highest version number. Updates append a new row, they never mutate an
// existing one.
type RoadNetwork struct {
	Base
	Name       string    `gorm:"size:255;not null;uniqueIndex:uq_network_customer_name_version" json:"name"`
	Version    float64   `gorm:"not null;uniqueIndex:uq_network_customer_name_version" json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	CustomerID string    `gorm:"type:char(36);index;not null;uniqueIndex:uq_network_customer_name_version" json:"customer_id"`
}

// TableName overrides the table name for RoadNetwork
func (RoadNetwork) TableName() string {
	return "roadnetwork"
}

// Edge is one line-geometry feature of a network version, with its free-form
// GeoJSON property bag. Edges are inserted in bulk when a version is created
// and flipped inactive when that version is superseded by a newer one.
// Reads address versions directly and deliberately ignore IsActive, so a
// historical version always returns its complete edge set.
type Edge struct {
	Base
	NetworkID  string   `gorm:"type:char(36);index;not null" json:"network_id"`
	IsActive   bool     `gorm:"not null;default:true" json:"is_active"`
	Properties JSON     `json:"properties"`
	Geometry   Geometry `json:"geometry"`
}

// TableName overrides the table name for Edge
func (Edge) TableName() string {
	return "edge"
}
