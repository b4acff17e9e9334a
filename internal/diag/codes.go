package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for one failure class. The numeric
// ranges group codes by producer: 3xxx scope resolution, 4xxx snapshot IO.
type Code uint16

const (
	UnknownCode Code = 0

	// Scope resolution
	ScopeNullTarget     Code = 3001
	ScopeUnrooted       Code = 3002
	ScopeUnitUnbound    Code = 3003
	ScopeNoLibrary      Code = 3004
	ScopeUnresolvedType Code = 3005
	ScopeUnresolvedExec Code = 3006
	ScopeDepthExceeded  Code = 3007

	// Snapshot loading
	SnapBadSchema Code = 4001
	SnapBadIndex  Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:         "unknown failure",
	ScopeNullTarget:     "cannot build context: node is null",
	ScopeUnrooted:       "node is not rooted in a compilation unit",
	ScopeUnitUnbound:    "compilation unit is not bound",
	ScopeNoLibrary:      "compilation unit has no owning library",
	ScopeUnresolvedType: "cannot build scope for an unresolved type",
	ScopeUnresolvedExec: "cannot build scope for an unresolved function/method/constructor",
	ScopeDepthExceeded:  "ancestor chain exceeds the configured depth limit",
	SnapBadSchema:       "snapshot schema version mismatch",
	SnapBadIndex:        "snapshot references an out-of-range index",
}

// ID renders the short diagnostic identifier, e.g. SCO3002.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SCO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SNP%04d", ic)
	}
	return "E0000"
}

// Title returns the human description registered for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
