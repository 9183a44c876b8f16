package pb

// SessionRequest addresses the cart and order of one shopper.
type SessionRequest struct {
	SessionId string `json:"session_id"`
}

func (r *SessionRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type AddItemRequest struct {
	SessionId string `json:"session_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Img       string `json:"img"`
}

func (r *AddItemRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type UpdateQuantityRequest struct {
	SessionId string `json:"session_id"`
	Index     int32  `json:"index"`
	Qty       int32  `json:"qty"`
}

func (r *UpdateQuantityRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type RemoveItemRequest struct {
	SessionId string `json:"session_id"`
	Index     int32  `json:"index"`
}

func (r *RemoveItemRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type Customer struct {
	Fullname   string `json:"fullname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Postalcode string `json:"postalcode"`
}

type PlaceOrderRequest struct {
	SessionId string    `json:"session_id"`
	Customer  *Customer `json:"customer"`
}

func (r *PlaceOrderRequest) GetSessionId() string {
	if r == nil {
		return ""
	}
	return r.SessionId
}

type CartLine struct {
	Index    int32  `json:"index"`
	Name     string `json:"name"`
	Img      string `json:"img"`
	Price    string `json:"price"`
	Qty      int32  `json:"qty"`
	Subtotal string `json:"subtotal"`
}

type CartResponse struct {
	Items []*CartLine `json:"items"`
	Total string      `json:"total"`
}

type AddItemResponse struct {
	Message string    `json:"message"`
	Item    *CartLine `json:"item"`
}

// OrderResponse carries a placed order. Address is the composed one-line
// address.
type OrderResponse struct {
	Message  string      `json:"message,omitempty"`
	Fullname string      `json:"fullname"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	Items    []*CartLine `json:"items"`
	Total    string      `json:"total"`
}
