// Package entity contains the core business objects of the project.
package entity

// Role represents the position an identity occupies in the supply chain.
type Role string

const (
	// RoleProducer indicates a producer of raw asset batches.
	RoleProducer Role = "producer"
	// RoleFactory indicates a factory that processes producer batches.
	RoleFactory Role = "factory"
	// RoleRetailer indicates a retailer that distributes factory batches.
	RoleRetailer Role = "retailer"
	// RoleConsumer indicates the terminal consumer role.
	RoleConsumer Role = "consumer"
)

// roleSuccessor fixes the custody order of the chain. Each role may hand
// batches only to its direct successor; Consumer has none.
var roleSuccessor = map[Role]Role{
	RoleProducer: RoleFactory,
	RoleFactory:  RoleRetailer,
	RoleRetailer: RoleConsumer,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleProducer, RoleFactory, RoleRetailer, RoleConsumer:
		return true
	default:
		return false
	}
}

// CanTransferTo reports whether custody may move from this role to the given role.
func (r Role) CanTransferTo(to Role) bool {
	next, ok := roleSuccessor[r]

	return ok && next == to
}

// IsTerminal reports whether the role sits at the end of the chain and may
// never originate a transfer.
func (r Role) IsTerminal() bool {
	_, ok := roleSuccessor[r]

	return !ok
}

// RequiresParentAsset reports whether batches issued by this role must
// reference a parent batch the issuer holds. Producers issue root batches;
// factories and retailers derive theirs from upstream stock.
func (r Role) RequiresParentAsset() bool {
	return r == RoleFactory || r == RoleRetailer
}
