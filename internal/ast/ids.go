package ast

// NodeID indexes a node inside a Tree (1-based, 0 = absent).
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
