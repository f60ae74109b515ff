package models

import "time"

// NetworkEdge is the undirected trade relationship between two organizations.
// The document _id is the canonical pair key (lexicographically smaller
// identifier first), so A→B and B→A transactions land on the same edge.
type NetworkEdge struct {
	ID          string    `bson:"_id" json:"id"`
	A           string    `bson:"a" json:"a"`
	B           string    `bson:"b" json:"b"`
	LastTxn     time.Time `bson:"last_txn" json:"last_txn"`
	TotalVolume float64   `bson:"total_volume" json:"total_volume"`
}

// EdgeKey derives the canonical pair key for two organization identifiers.
func EdgeKey(a, b string) string {
	if a < b {
		return a + "_" + b
	}
	return b + "_" + a
}
