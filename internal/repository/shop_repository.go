package repository

import (
	"database/sql"
	"fmt"

	"github.com/shoplocal/backend-go/internal/models"
)

// ShopRepository handles database operations for registered shops
type ShopRepository struct {
	db *sql.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

const shopColumns = `id, shop_name, shop_type, latitude, longitude, photo_url,
	address, rating, contact, open_time, close_time, products, created_at`

// ListShops retrieves all registered shops in insertion order
func (r *ShopRepository) ListShops() ([]models.RegistryShop, error) {
	query := "SELECT " + shopColumns + " FROM registered_shops ORDER BY id ASC"

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	var shops []models.RegistryShop
	for rows.Next() {
		var s models.RegistryShop
		err := rows.Scan(
			&s.ID, &s.ShopName, &s.ShopType, &s.Latitude, &s.Longitude, &s.PhotoURL,
			&s.Address, &s.Rating, &s.Contact, &s.OpenTime, &s.CloseTime,
			&s.Products, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}

	return shops, rows.Err()
}

// GetShop retrieves a single registered shop by ID
func (r *ShopRepository) GetShop(id int64) (*models.RegistryShop, error) {
	query := "SELECT " + shopColumns + " FROM registered_shops WHERE id = ?"

	var s models.RegistryShop
	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.ShopName, &s.ShopType, &s.Latitude, &s.Longitude, &s.PhotoURL,
		&s.Address, &s.Rating, &s.Contact, &s.OpenTime, &s.CloseTime,
		&s.Products, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return &s, nil
}

// CreateShop inserts a new registered shop and returns its ID
func (r *ShopRepository) CreateShop(shop models.RegistryShop) (int64, error) {
	query := `INSERT INTO registered_shops
		(shop_name, shop_type, latitude, longitude, photo_url, address, rating,
		 contact, open_time, close_time, products)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		shop.ShopName, shop.ShopType, shop.Latitude, shop.Longitude, shop.PhotoURL,
		shop.Address, shop.Rating, shop.Contact, shop.OpenTime, shop.CloseTime,
		shop.Products,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create shop: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new shop id: %w", err)
	}

	return id, nil
}

// UpdateProducts replaces a shop's serialized inventory. It reports whether
// a row with that ID existed.
func (r *ShopRepository) UpdateProducts(id int64, products string) (bool, error) {
	result, err := r.db.Exec("UPDATE registered_shops SET products = ? WHERE id = ?", products, id)
	if err != nil {
		return false, fmt.Errorf("failed to update products: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result: %w", err)
	}

	return affected > 0, nil
}
