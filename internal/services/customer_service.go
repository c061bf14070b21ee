package services

import (
	"errors"
	"strings"

	"github.com/mobilityworks/roadnet/internal/models"
	"gorm.io/gorm"
)

// CreateCustomer creates a new customer. Names are normalized to lowercase
// before insert; a name collision returns ErrDuplicateCustomer.
func CreateCustomer(db *gorm.DB, name string) (*models.Customer, error) {
	customer := models.Customer{Name: strings.ToLower(name)}

	if err := db.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCustomer
		}
		return nil, err
	}

	return &customer, nil
}

// ListCustomers returns all customers ordered by name ascending.
func ListCustomers(db *gorm.DB) ([]models.Customer, error) {
	var customers []models.Customer
	if err := db.Order("name asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
