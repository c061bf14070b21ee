package models

import (
	"time"
)

// Customer represents one isolated tenant account. All users and road
// networks belong to exactly one customer. Names are stored lowercase and
// are unique across the system. Related rows are fetched by explicit
// queries on the owning foreign key; there are no back-reference fields.
type Customer struct {
	Base
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Customer
func (Customer) TableName() string {
	return "customer"
}
