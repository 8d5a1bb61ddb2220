package core

import "fmt"

// Owners holds the object registered under each identifier. A nil entry is a free slot.
var Owners []interface{}

const initialIdentifierSlots = 100

// IdentifierAquireNewID registers owner and returns the lowest free identifier.
func IdentifierAquireNewID(owner interface{}) uint32 {
	if len(Owners) == 0 {
		Owners = make([]interface{}, initialIdentifierSlots)
	}
	for i := range Owners {
		// Existing free spot. Take it.
		if Owners[i] == nil {
			Owners[i] = owner
			return uint32(i)
		}
	}

	// No free slot left, grow by one.
	Owners = append(Owners, owner)
	return uint32(len(Owners) - 1)
}

// IdentifierOwner returns the object registered under id, or nil.
func IdentifierOwner(id uint32) interface{} {
	if int(id) >= len(Owners) {
		return nil
	}
	return Owners[id]
}

func IdentifierReleaseID(id uint32) error {
	if len(Owners) == 0 {
		return fmt.Errorf("func IdentifierReleaseID: called before any identifier was acquired. Nothing was done")
	}

	length := uint32(len(Owners))
	if id >= length {
		return fmt.Errorf("func IdentifierReleaseID: id '%d' out of range (max=%d). Nothing was done", id, length-1)
	}

	// Just zero out the entry, making it available for use.
	Owners[id] = nil
	return nil
}
