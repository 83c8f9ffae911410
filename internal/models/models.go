package models

import "time"

// Product is a catalog record as the upstream source stores it. Price is
// either a number or a locale-formatted string ("$45.000"); callers
// normalize it before doing arithmetic.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          any      `json:"price"`
	PriceFormatted string   `json:"price_formatted,omitempty"`
	ImageURL       string   `json:"image_url"`
	ImageURLs      []string `json:"image_urls,omitempty"`
	Category       string   `json:"category,omitempty"`
	Stock          *int     `json:"stock,omitempty"`
	Benefits       []string `json:"benefits,omitempty"`
}

// LineItem is a product snapshot held inside a cart. Price is canonical
// and frozen at insertion time; later catalog changes never touch it.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

type Cart struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CustomerData lives only for the duration of one checkout.
type CustomerData struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// OrderMessage is the composed receipt plus its messaging deep link.
type OrderMessage struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type Article struct {
	ID       string   `json:"id"       bson:"_id,omitempty"`
	Category string   `json:"category" bson:"category"`
	Title    string   `json:"title"    bson:"title"`
	Excerpt  string   `json:"excerpt"  bson:"excerpt"`
	Content  []string `json:"content"  bson:"content"`
	Image    string   `json:"image"    bson:"image"`
	Author   string   `json:"author"   bson:"author"`
	Date     string   `json:"date"     bson:"date"`
	ReadTime string   `json:"read_time" bson:"read_time"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta"      validate:"required"`
}

type CheckoutSubmitRequest struct {
	Name    string `json:"name"    validate:"required"`
	City    string `json:"city"    validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type AssistantOrderRequest struct {
	ProductNames []string `json:"product_names" validate:"required,min=1,dive,required"`
	CustomerName string   `json:"customer_name" validate:"required"`
	CustomerCity string   `json:"customer_city" validate:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
