package models

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SRID of all stored geometry (WGS 84).
const SRID = 4326

// Geometry is a line-geometry column value serialized as EWKB. On postgres
// it maps to a real PostGIS geometry column; every other driver stores the
// raw EWKB bytes, which round-trip but carry no spatial indexing.
type Geometry struct {
	Geom orb.Geometry
	SRID int
}

// NewGeometry wraps an orb geometry with the storage SRID.
func NewGeometry(g orb.Geometry) Geometry {
	return Geometry{Geom: g, SRID: SRID}
}

// Value implements driver.Valuer, encoding the geometry as EWKB.
func (g Geometry) Value() (driver.Value, error) {
	if g.Geom == nil {
		return nil, nil
	}
	srid := g.SRID
	if srid == 0 {
		srid = SRID
	}
	return ewkb.Value(g.Geom, srid).Value()
}

// Scan implements sql.Scanner, decoding EWKB bytes or the hex form postgis
// returns for geometry columns.
func (g *Geometry) Scan(value interface{}) error {
	if value == nil {
		g.Geom = nil
		return nil
	}
	s := ewkb.Scanner(nil)
	if err := s.Scan(value); err != nil {
		return err
	}
	g.Geom = s.Geometry
	g.SRID = s.SRID
	return nil
}

// GormDataType marks the struct as a single scalar column so schema parsing
// does not descend into the orb interface field.
func (Geometry) GormDataType() string {
	return "geometry"
}

// GormDBDataType ensures the correct column type is used for each database
// driver. Only postgres gets a native spatial type.
func (Geometry) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "geometry(LINESTRING,4326)"
	case "sqlserver", "mssql":
		return "VARBINARY(MAX)"
	}
	return "BLOB"
}
