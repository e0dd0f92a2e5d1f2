package domain

// Plan is a pricing tier shown on the pricing page.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Period   string   `json:"period"`
	Storage  string   `json:"storage"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// Receipt is the outcome of a simulated checkout. No money moves.
type Receipt struct {
	Reference string  `json:"reference"`
	PlanID    string  `json:"planId"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	PaidAt    string  `json:"paidAt"`
}
