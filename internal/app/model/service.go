package model

type ServiceRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	EstimatedTime string   `json:"estimatedTime"`
	MinimumOrder  int      `json:"minimumOrder"`
	Unit          string   `json:"unit"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"isActive"`
}

type ServicesResponse []ServiceResponse

type ServiceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	EstimatedTime string   `json:"estimatedTime"`
	MinimumOrder  int      `json:"minimumOrder"`
	Unit          string   `json:"unit"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"isActive"`
	CreatedAt     string   `json:"createdAt"`
}
