package entities

// Client, StockItem and User are owned by other services of the suite. The
// service-order core reads them (client resolution on intake, policy sweep
// inputs) and never mutates them.

type Client struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Phone  string `json:"telefone"`
	Email  string `json:"email"`
	Active bool   `json:"ativo"`
}

// StockItem is an inventory product with its reorder threshold.
type StockItem struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Quantity    int    `json:"quantidade"`
	MinQuantity int    `json:"estoque_minimo"`
}

// Critical reports whether the item is at or below its minimum stock level.
func (s StockItem) Critical() bool {
	return s.Quantity <= s.MinQuantity
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	Active bool   `json:"ativo"`
}
