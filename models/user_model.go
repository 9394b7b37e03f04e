package models

// User is keyed by ethereumAddress; the address is stored exactly as supplied.
// The watchlist must stay duplicate-free, the projects/events lists may not.
type User struct {
	ID              string   `json:"_id,omitempty" bson:"-"`
	EthereumAddress string   `json:"ethereumAddress" bson:"ethereumAddress"`
	Projects        []string `json:"projects" bson:"projects"`
	Events          []string `json:"events" bson:"events"`
	Watchlist       []string `json:"watchlist" bson:"watchlist"`
}

// UserCreate is the registration payload. List fields are optional and only
// used when the address is seen for the first time.
type UserCreate struct {
	EthereumAddress string   `json:"ethereumAddress"`
	Projects        []string `json:"projects"`
	Events          []string `json:"events"`
	Watchlist       []string `json:"watchlist"`
}
