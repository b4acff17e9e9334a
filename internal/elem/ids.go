package elem

// ElementID indexes an element inside a Graph (1-based, 0 = absent).
type ElementID uint32

const NoElementID ElementID = 0

func (id ElementID) IsValid() bool { return id != NoElementID }
