package converter

type CartRedisModel struct {
	ID       string               `json:"id"`
	Delivery string               `json:"delivery"`
	Lines    []CartLineRedisModel `json:"lines"`
}

type CartLineRedisModel struct {
	Product ProductRedisModel `json:"product"`
	Qty     int               `json:"qty"`
}

type ProductRedisModel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
