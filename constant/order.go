package constant

//OrderDirection represents sort direction of an order or group item
type OrderDirection string

const (
	//Asc represents ascending sort direction
	Asc = OrderDirection("ASC")
	//Desc represents descending sort direction
	Desc = OrderDirection("DESC")
)

//IsValid checks order direction
func (d OrderDirection) IsValid() bool {
	switch d {
	case Asc, Desc:
		return true
	}
	return false
}
