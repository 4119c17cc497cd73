package transport

type CartResponse struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Items  []uint `json:"items"`
}

type CreateCartRequest struct {
	UserID uint `json:"user_id"`
}

type OrderResponse struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	Total     float64 `json:"total"`
	CreatedAt int64   `json:"created_at"`
	LineIDs   []uint  `json:"order_details"`
}

type CreateOrderRequest struct {
	UserID uint    `json:"user_id"`
	Total  float64 `json:"total"`
}

type CreateOrderLineRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateReviewRequest struct {
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
}
