package condition

//Condition represents a predicate lifted out of a subquery so the parent
//statement can route with it; the text is opaque to index resolution.
type Condition struct {
	Owner    string
	Column   string
	Operator string
	Raw      string
}
