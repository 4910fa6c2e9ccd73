package model

// 注文の商品1行。weightが無い商品はデコード時に"N/A"を入れて返す。
type LineItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Weight   string  `json:"weight,omitempty"`
}
