package shop

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Role          string    `json:"role"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	Image         *string   `json:"image"`
	RememberToken *string   `json:"remember_token"`
	PasswordHash  *string   `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       int64     `json:"price"` // rupiah
	Stock       int64     `json:"stock"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Cart struct {
	ID        string      `json:"id"`
	Quantity  int         `json:"quantity"`
	UserID    string      `json:"user_id"`
	ProductID string      `json:"product_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      *UserRef    `json:"users,omitempty"`
	Product   *ProductRef `json:"products,omitempty"`
}

type Pesanan struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        *UserRef  `json:"users,omitempty"`
}

type OrderItem struct {
	ID        string      `json:"id"`
	Quantity  int         `json:"quantity"`
	PesananID string      `json:"pesanan_id"`
	ProductID string      `json:"product_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Pesanan   *PesananRef `json:"pesanan,omitempty"`
	Product   *ProductRef `json:"products,omitempty"`
}

type Review struct {
	ID        string      `json:"id"`
	Rating    int         `json:"rating"`
	Review    *string     `json:"review"`
	ProductID *string     `json:"product_id"`
	UserID    *string     `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Product   *ProductRef `json:"products,omitempty"`
	User      *UserRef    `json:"users,omitempty"`
}

// ---- relasi yang di-embed di response (subset kolom per join) ----

type UserRef struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Image   *string `json:"image,omitempty"`
}

type ProductRef struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price *int64  `json:"price,omitempty"`
	Image *string `json:"image,omitempty"`
}

type PesananRef struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
}
