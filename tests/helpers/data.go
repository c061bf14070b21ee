package helpers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/mobilityworks/roadnet/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedCustomer creates a customer tenant for tests
func SeedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := models.Customer{Name: name}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Failed to create customer %s: %v", name, err)
	}
	return &customer
}

// SeedUser creates an active user bound to a customer
func SeedUser(t *testing.T, db *gorm.DB, customerID, username, password, userType string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: string(hash),
		FullName:       "Test " + username,
		Type:           userType,
		IsActive:       true,
		CustomerID:     customerID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return &user
}

// RoadFeatureCollection builds a feature collection of n street segments
func RoadFeatureCollection(n int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := 0; i < n; i++ {
		lon := 11.5 + float64(i)*0.001
		feature := geojson.NewFeature(orb.LineString{
			{lon, 48.1},
			{lon + 0.001, 48.1005},
		})
		feature.Properties = geojson.Properties{
			"street_name": fmt.Sprintf("Teststrasse %d", i+1),
			"max_speed":   50,
			"lanes":       2,
		}
		fc.Append(feature)
	}
	return fc
}

// GeoJSONUploadBody builds a multipart form with name, version and a .geojson file
func GeoJSONUploadBody(t *testing.T, name, version string, fc *geojson.FeatureCollection) (*bytes.Buffer, string) {
	t.Helper()

	raw, err := fc.MarshalJSON()
	if err != nil {
		t.Fatalf("Failed to marshal feature collection: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("name", name); err != nil {
		t.Fatalf("Failed to write name field: %v", err)
	}
	if err := writer.WriteField("version", version); err != nil {
		t.Fatalf("Failed to write version field: %v", err)
	}
	part, err := writer.CreateFormFile("file", "network.geojson")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(raw); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}
