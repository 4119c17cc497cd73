package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:50;unique;not null"  json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Email        string `gorm:"size:100;unique;not null" json:"email"`
	FirstName    string `gorm:"size:50"                  json:"first_name"`
	LastName     string `gorm:"size:50"                  json:"last_name"`
	IsActive     bool   `gorm:"default:true"             json:"is_active"`
	IsSuperuser  bool   `gorm:"default:false"            json:"is_superuser"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name string `gorm:"size:100;unique;not null"  json:"name"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:255;index;not null"  json:"name"`
	CategoryID  uint    `gorm:"index"                    json:"category_id"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Rating      float64 `gorm:"default:0"                json:"rating"`
	Description string  `json:"description"`
}

type Review struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint   `gorm:"index;not null"           json:"user_id"`
	ProductID uint   `gorm:"index;not null"           json:"product_id"`
	Text      string `gorm:"size:500"                 json:"text"`
	Rating    int    `gorm:"not null"                 json:"rating"`
}

// Cart is one row per user. The unique index on user_id is what keeps
// concurrent create requests safe, not application-level checks.
type Cart struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null"     json:"user_id"`
}

// CartProduct is the cart↔product join. The composite primary key keeps a
// product from appearing twice in the same cart.
type CartProduct struct {
	CartID    uint `gorm:"primaryKey" json:"cart_id"`
	ProductID uint `gorm:"primaryKey" json:"product_id"`
}

func (CartProduct) TableName() string {
	return "cart_products"
}

type Order struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"index;not null"           json:"user_id"`
	Total     float64 `gorm:"not null"                 json:"total"`
	CreatedAt int64   `gorm:"autoCreateTime"           json:"created_at"`
}

type OrderLine struct {
	ID        uint `gorm:"primaryKey;autoIncrement"   json:"id"`
	OrderID   uint `gorm:"index;not null"             json:"order_id"`
	ProductID uint `gorm:"not null"                   json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0" json:"quantity"`
}
