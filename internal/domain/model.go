package domain

import "time"

type Category string

const (
	CategoryVeg    Category = "Veg"
	CategoryNonVeg Category = "NonVeg"
	CategoryDrink  Category = "Drink"
)

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	SubCategory string   `json:"sub_category"`
	Image       string   `json:"image,omitempty"`
	Available   bool     `json:"available"`
	PrepTime    int      `json:"preparation_time"` // minutes
	Featured    bool     `json:"featured,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type TableType string

const (
	TableShared  TableType = "shared"
	TablePrivate TableType = "private"
)

type Table struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Seats     int       `json:"seats"`
	QRCode    string    `json:"qr_code"`
	Type      TableType `json:"type"`
	Available bool      `json:"is_available"`
	Locked    bool      `json:"is_locked"`
}

// Venue is either a single Restaurant or a FoodCourt of stalls.
// The interface is sealed so menu resolution stays exhaustive.
type Venue interface {
	VenueID() string
	VenueName() string
	VenueTables() []Table
	venue()
}

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Logo        string     `json:"logo,omitempty"`
	Tables      []Table    `json:"tables"`
	Menu        []MenuItem `json:"menu"`
}

func (r Restaurant) VenueID() string      { return r.ID }
func (r Restaurant) VenueName() string    { return r.Name }
func (r Restaurant) VenueTables() []Table { return r.Tables }
func (Restaurant) venue()                 {}

type Stall struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Logo    string     `json:"logo,omitempty"`
	Cuisine string     `json:"cuisine"`
	Menu    []MenuItem `json:"menu"`
}

type FoodCourt struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Logo   string  `json:"logo,omitempty"`
	Tables []Table `json:"tables"`
	Stalls []Stall `json:"stalls"`
}

func (f FoodCourt) VenueID() string      { return f.ID }
func (f FoodCourt) VenueName() string    { return f.Name }
func (f FoodCourt) VenueTables() []Table { return f.Tables }
func (FoodCourt) venue()                 {}

// Menu resolves the browsable menu for a venue. For a food court an
// empty stallID means every stall's menu; otherwise only the selected
// stall's (an unknown stallID yields nothing).
func Menu(v Venue, stallID string) []MenuItem {
	switch venue := v.(type) {
	case Restaurant:
		return venue.Menu
	case FoodCourt:
		var items []MenuItem
		for _, s := range venue.Stalls {
			if stallID == "" || s.ID == stallID {
				items = append(items, s.Menu...)
			}
		}
		return items
	default:
		return nil
	}
}

type CartItem struct {
	Item         MenuItem `json:"item"`
	Quantity     int      `json:"quantity"`
	Instructions string   `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                string      `json:"id"`
	TableID           string      `json:"table_id"`
	Items             []CartItem  `json:"items"`
	Status            OrderStatus `json:"status"`
	TotalAmount       float64     `json:"total_amount"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery_time,omitempty"`
}

type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
