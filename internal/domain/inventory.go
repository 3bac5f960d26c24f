package domain

// Item is one slot of the keyed inventory format. Legacy stores kept
// inventories as flat arrays of item IDs; the keyed format maps item ID to
// an Item with an accumulated quantity.
type Item struct {
	Quantity int `json:"quantity"`
}
