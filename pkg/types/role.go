package types

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Singular    string   `json:"singular"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Traits      []string `json:"traits"`
	Philosophy  string   `json:"philosophy"`
	IsExclusive bool     `json:"isExclusive"`
	Image       string   `json:"image"`
}
