package domain

// Actor is one of the five parties with a financial stake in a rental.
type Actor string

const (
	ActorDriver     Actor = "driver"
	ActorOwner      Actor = "owner"
	ActorInsurance  Actor = "insurance"
	ActorAssistance Actor = "assistance"
	ActorDrivy      Actor = "drivy" // platform operator, under its wire name
)

// Actors lists every party in the fixed order used in report documents.
var Actors = []Actor{ActorDriver, ActorOwner, ActorInsurance, ActorAssistance, ActorDrivy}

type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// Action is a single ledger movement for a single actor. Amount is always
// non-negative; the direction carries the sign.
type Action struct {
	Who    Actor     `json:"who"`
	Type   EntryType `json:"type"`
	Amount int       `json:"amount"` // minor units
}
