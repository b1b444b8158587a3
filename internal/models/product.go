// internal/models/product.go
package models

// Variant is one purchasable (color, size) combination of a product with its
// own price, stock and image. Cart and order lines reference it by id only.
type Variant struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	Color         string  `json:"color"`
	Size          string  `json:"size"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl"`
}

// InStock reports whether the variant can currently be added to a cart.
func (v Variant) InStock() bool {
	return v.StockQuantity > 0
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  string    `json:"categoryId"`
	Variants    []Variant `json:"variants"`
}

// Purchasable products always carry at least one variant.
func (p Product) Purchasable() bool {
	return len(p.Variants) > 0
}

type MainCategoryType int

const (
	MainCategoryAoNam MainCategoryType = iota
	MainCategoryQuanNam
	MainCategoryGiayDep
	MainCategoryPhuKien
	MainCategoryQuaTang
	MainCategoryXTech
	MainCategoryHangMoi
	MainCategoryUuDai
)

type Category struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	MainCategory MainCategoryType `json:"mainCategory"`
}
