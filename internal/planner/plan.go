package planner

// Item is a named member of the set being shuffled.
type Item struct {
	// ID is the stable identifier of the item on the remote side
	ID string

	// Name is the item's current name, unique within the set
	Name string
}

// Operation represents a single rename to execute.
type Operation struct {
	// TargetID is the ID of the item being renamed
	TargetID string

	// NewName is the name the item receives
	NewName string

	// Temporary marks renames into a disposable placeholder name
	Temporary bool
}

// RenamePlan represents an ordered list of renames that realizes a permutation.
type RenamePlan struct {
	// Operations is the ordered list of renames to execute
	Operations []Operation

	// Cycles is the number of non-trivial cycles the permutation decomposed into
	Cycles int
}

// TempNamer produces disposable placeholder names.
type TempNamer interface {
	// TempName returns a fresh random name.
	TempName() string
}

// TempNamerFunc adapts a function to TempNamer.
type TempNamerFunc func() string

// TempName calls f.
func (f TempNamerFunc) TempName() string {
	return f()
}

// NewRenamePlan creates a new empty RenamePlan.
func NewRenamePlan() *RenamePlan {
	return &RenamePlan{
		Operations: []Operation{},
	}
}

// AddOperation adds an operation to the plan.
func (p *RenamePlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// IsEmpty returns true if the plan has nothing to execute.
func (p *RenamePlan) IsEmpty() bool {
	return len(p.Operations) == 0
}

// TemporaryCount returns the number of renames into placeholder names.
func (p *RenamePlan) TemporaryCount() int {
	n := 0
	for _, op := range p.Operations {
		if op.Temporary {
			n++
		}
	}
	return n
}
