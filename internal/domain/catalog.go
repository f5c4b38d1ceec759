package domain

// Category is a flat grouping record for services. Services reference a
// category by id without enforced referential integrity: deleting or
// renaming a category does not cascade to the services pointing at it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Service is a catalog entry describing one offered treatment.
// Price and duration are display strings ("$30", "45 min"), as edited by
// the instance owner.
type Service struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Category    string   `json:"category"`
	IsPopular   bool     `json:"isPopular"`
	Features    []string `json:"features"`
}
