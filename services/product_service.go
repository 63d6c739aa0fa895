// services/product_service.go
package services

import (
	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

func CreateProductType(name string) (*models.ProductType, error) {
	pt := &models.ProductType{Name: name}
	if err := config.DB.Create(pt).Error; err != nil {
		return nil, err
	}
	return pt, nil
}

func ListProductTypes() ([]models.ProductType, error) {
	var types []models.ProductType
	err := config.DB.Order("name").Find(&types).Error
	return types, err
}

func GetProductType(typeID uint) (*models.ProductType, error) {
	var pt models.ProductType
	if err := config.DB.First(&pt, typeID).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func UpdateProductType(typeID uint, name string) (*models.ProductType, error) {
	var pt models.ProductType
	if err := config.DB.First(&pt, typeID).Error; err != nil {
		return nil, err
	}
	pt.Name = name
	if err := config.DB.Save(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

// DeleteProductType cascades: the type's products disappear, and so do
// their memberships in any meal. One transaction, so a failure leaves the
// catalog untouched.
func DeleteProductType(typeID uint) error {
	var pt models.ProductType
	if err := config.DB.First(&pt, typeID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var productIDs []uint
		err := tx.Model(&models.Product{}).
			Where("type_id = ?", pt.ID).
			Pluck("id", &productIDs).Error
		if err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.MealProduct{}).Error; err != nil {
				return err
			}
			if err := tx.Where("type_id = ?", pt.ID).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&pt).Error
	})
}

func CreateProduct(name string, price int64, kcal int, typeID uint) (*models.Product, error) {
	var pt models.ProductType
	if err := config.DB.First(&pt, typeID).Error; err != nil {
		return nil, err
	}

	product := &models.Product{Name: name, Price: price, Kcal: kcal, TypeID: pt.ID}
	if err := config.DB.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := config.DB.
		Preload("Type").
		Order("type_id, name").
		Find(&products).Error
	return products, err
}

func GetProduct(productID uint) (*models.Product, error) {
	var product models.Product
	err := config.DB.Preload("Type").First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(productID uint, name string, price int64, kcal int, typeID uint) (*models.Product, error) {
	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		return nil, err
	}
	var pt models.ProductType
	if err := config.DB.First(&pt, typeID).Error; err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	product.Kcal = kcal
	product.TypeID = pt.ID
	if err := config.DB.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct also removes the product from every meal that uses it.
func DeleteProduct(productID uint) error {
	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.MealProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}
