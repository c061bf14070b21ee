package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/paulmach/orb/geojson"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// edgeInsertBatchSize bounds the parameter count of a single bulk insert.
const edgeInsertBatchSize = 500

// CreateNetwork creates a new road network version and its edges in one
// transaction. A (customer, name, version) collision returns
// ErrDuplicateNetwork.
func CreateNetwork(db *gorm.DB, customerID, name string, version float64, fc *geojson.FeatureCollection) (*models.RoadNetwork, error) {
	network := models.RoadNetwork{
		Name:       name,
		Version:    version,
		CustomerID: customerID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&network).Error; err != nil {
			return err
		}

		edges, err := edgesFromFeatures(network.ID, fc)
		if err != nil {
			return err
		}
		if len(edges) > 0 {
			if err := tx.CreateInBatches(edges, edgeInsertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateNetwork
		}
		return nil, err
	}

	return &network, nil
}

// UpdateNetwork appends a new version to an existing network. Inside one
// transaction it locks the current highest-version row, verifies the new
// version is strictly greater, retires the current version's edges and
// inserts the new row with its edge set. The row lock serializes concurrent
// updates of the same (customer, name); the composite unique index stays as
// backstop.
func UpdateNetwork(db *gorm.DB, customerID, name string, version float64, fc *geojson.FeatureCollection) (*models.RoadNetwork, error) {
	var network models.RoadNetwork

	err := db.Transaction(func(tx *gorm.DB) error {
		var current models.RoadNetwork
		err := tx.
			Clauses(hints.CommentBefore("select", "roadnetwork current version"), clause.Locking{Strength: "UPDATE"}).
			Where("name = ? AND customer_id = ?", name, customerID).
			Order("version desc").
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if version <= current.Version {
			return fmt.Errorf("new version (%g) must be higher than current latest (%g): %w",
				version, current.Version, ErrVersionNotNewer)
		}

		// Retire the superseded version's edges. They stay addressable
		// through the old network row.
		if err := tx.Model(&models.Edge{}).
			Where("network_id = ?", current.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		network = models.RoadNetwork{
			Name:       current.Name,
			Version:    version,
			CustomerID: customerID,
		}
		if err := tx.Create(&network).Error; err != nil {
			return err
		}

		edges, err := edgesFromFeatures(network.ID, fc)
		if err != nil {
			return err
		}
		if len(edges) > 0 {
			if err := tx.CreateInBatches(edges, edgeInsertBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &network, nil
}

// ListNetworks returns the customer's network versions ordered by name
// ascending then version descending, so the first row per name is the
// latest version.
func ListNetworks(db *gorm.DB, customerID string) ([]models.RoadNetwork, error) {
	var networks []models.RoadNetwork
	err := db.
		Where("customer_id = ?", customerID).
		Order("name asc").
		Order("version desc").
		Find(&networks).Error
	if err != nil {
		return nil, err
	}
	return networks, nil
}

// GetNetworkEdges selects one network version for the customer and returns
// all of its edges as a GeoJSON feature collection. With a timestamp filter
// the newest version created at or before that instant wins; with a version
// filter that exact version is selected; with neither, the current version.
// The edge active flag is ignored: a historical version always returns the
// complete edge set it was uploaded with.
func GetNetworkEdges(db *gorm.DB, customerID, name string, timestamp *time.Time, version *float64) (*geojson.FeatureCollection, *models.RoadNetwork, error) {
	query := db.Where("name = ? AND customer_id = ?", name, customerID)
	if timestamp != nil {
		query = query.Where("created_at <= ?", *timestamp)
	}
	if version != nil {
		query = query.Where("version = ?", *version)
	}

	var network models.RoadNetwork
	if err := query.Order("version desc").First(&network).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var edges []models.Edge
	if err := db.Where("network_id = ?", network.ID).Find(&edges).Error; err != nil {
		return nil, nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, edge := range edges {
		feature := geojson.NewFeature(edge.Geometry.Geom)
		if len(edge.Properties.JSON) > 0 {
			if err := json.Unmarshal(edge.Properties.JSON, &feature.Properties); err != nil {
				return nil, nil, fmt.Errorf("corrupt edge properties %s: %w", edge.ID, err)
			}
		}
		fc.Append(feature)
	}

	return fc, &network, nil
}

// edgesFromFeatures converts an uploaded feature collection to edge rows
// for a network version.
func edgesFromFeatures(networkID string, fc *geojson.FeatureCollection) ([]models.Edge, error) {
	edges := make([]models.Edge, 0, len(fc.Features))
	for _, feature := range fc.Features {
		properties, err := json.Marshal(feature.Properties)
		if err != nil {
			return nil, err
		}
		edges = append(edges, models.Edge{
			NetworkID:  networkID,
			IsActive:   true,
			Properties: models.NewJSON(properties),
			Geometry:   models.NewGeometry(feature.Geometry),
		})
	}
	return edges, nil
}
