package item

//Star represents a star projection, optionally qualified with an owner table
type Star struct {
	owner string
}

//NewStar creates a star item; empty owner means an unqualified star
func NewStar(owner string) *Star {
	return &Star{owner: owner}
}

//Owner returns owning table name or alias if present
func (s *Star) Owner() (string, bool) {
	return s.owner, s.owner != ""
}

func (s *Star) Expression() string {
	if s.owner == "" {
		return "*"
	}
	return s.owner + ".*"
}

func (s *Star) Alias() (string, bool) {
	return "", false
}

func (s *Star) selectItem() {}
