package models

import "time"

// EntryDirection is the side of a double-entry posting.
type EntryDirection string

const (
	EntryDebit  EntryDirection = "debit"
	EntryCredit EntryDirection = "credit"
)

// LedgerEntry is one posting inside an organization's ledger-of-counterparty.
// A completed invoice request produces exactly one debit entry under the
// sender and one credit entry under the destination, both carrying the same
// Reference.
type LedgerEntry struct {
	ID           string         `bson:"id" json:"id"`
	Direction    EntryDirection `bson:"direction" json:"direction"`
	Amount       float64        `bson:"amount" json:"amount"`
	Description  string         `bson:"description" json:"description"`
	Date         time.Time      `bson:"date" json:"date"`
	Reference    string         `bson:"reference" json:"reference"` // originating invoice-request ID
	From         string         `bson:"from" json:"from"`
	To           string         `bson:"to" json:"to"`
	Counterparty string         `bson:"counterparty" json:"counterparty"`
}

// Ledger is the per-(owner, counterparty) entry list. One document per pair.
type Ledger struct {
	OwnerID      string        `bson:"owner_id" json:"owner_id"`
	Counterparty string        `bson:"counterparty" json:"counterparty"`
	Entries      []LedgerEntry `bson:"entries" json:"entries"`
}
