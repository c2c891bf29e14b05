package shop

// Field nil = tidak dikirim client; saat update kolomnya dipertahankan.
// Tag validate dicek di layer HTTP sebelum query.

type UserInput struct {
	Name          *string `validate:"omitempty,min=1"`
	Email         *string `validate:"omitempty,email"`
	PasswordHash  *string
	Role          *string `validate:"omitempty,oneof=admin customer"`
	Phone         *string
	Address       *string
	Image         *string
	RememberToken *string
}

type ProductInput struct {
	Name        *string `validate:"omitempty,min=1"`
	Description *string
	Price       *int64 `validate:"omitempty,min=0"`
	Stock       *int64 `validate:"omitempty,min=0"`
	Image       *string
}

type CartInput struct {
	Quantity  *int `validate:"omitempty,min=1"`
	UserID    *string
	ProductID *string
}

type PesananInput struct {
	UserID      *string
	Status      *string `validate:"omitempty,oneof=pending diproses dikirim selesai dibatalkan"`
	TotalAmount *int64  `validate:"omitempty,min=0"`
}

type OrderItemInput struct {
	Quantity  *int `validate:"omitempty,min=1"`
	PesananID *string
	ProductID *string
}

type ReviewInput struct {
	Rating    *int `validate:"omitempty,min=1,max=5"`
	Review    *string
	ProductID *string
	UserID    *string
}
