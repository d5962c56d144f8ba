package dql

//Handle references a statement stored in an Arena
type Handle int

//NilHandle represents an absent statement link
const NilHandle = Handle(-1)

//IsValid checks whether the handle points at a statement
func (h Handle) IsValid() bool {
	return h != NilHandle
}

//Arena stores the statements of one query compilation pass. Parent and
//subquery links navigate through handles instead of owning pointers, so the
//statement graph can be revisited in any order; handles stay valid for the
//lifetime of the pass.
type Arena struct {
	statements []*SelectStatement
}

//Add stores a statement and returns its handle
func (a *Arena) Add(statement *SelectStatement) Handle {
	a.statements = append(a.statements, statement)
	return Handle(len(a.statements) - 1)
}

//Get returns the statement a handle points at
func (a *Arena) Get(handle Handle) (*SelectStatement, bool) {
	if handle < 0 || int(handle) >= len(a.statements) {
		return nil, false
	}
	return a.statements[handle], true
}

//Len returns stored statement count
func (a *Arena) Len() int {
	return len(a.statements)
}
