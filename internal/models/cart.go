// internal/models/cart.go
package models

// CartItem is one cart line. The product fields are denormalized copies the
// server sends along for display.
type CartItem struct {
	ID                     string  `json:"id"`
	CartID                 string  `json:"cartId"`
	ProductVariantID       string  `json:"productVariantId"`
	Quantity               int     `json:"quantity"`
	ProductName            string  `json:"productName"`
	ProductVariantColor    string  `json:"productVariantColor"`
	ProductVariantSize     string  `json:"productVariantSize"`
	ProductVariantPrice    float64 `json:"productVariantPrice"`
	ProductVariantImageURL string  `json:"productVariantImageUrl"`
}

// Cart is the server's canonical cart. TotalCartPrice is server-computed and
// never re-derived locally.
type Cart struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Items          []CartItem `json:"items"`
	TotalCartPrice float64    `json:"totalCartPrice"`
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// Item looks a cart line up by id.
func (c *Cart) Item(cartItemID string) (CartItem, bool) {
	if c == nil {
		return CartItem{}, false
	}
	for _, item := range c.Items {
		if item.ID == cartItemID {
			return item, true
		}
	}
	return CartItem{}, false
}

type AddToCartRequest struct {
	ProductVariantID string `json:"productVariantId"`
	Quantity         int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	CartItemID string `json:"cartItemId"`
	Quantity   int    `json:"quantity"`
}
