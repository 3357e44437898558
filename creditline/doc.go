// Package creditline models bilateral credit lines between accounts and the
// stores that serve them to the routing engine.
//
// A CreditLine is owned by one account (the issuer of IOUs) and extended to a
// partner. Limit is optional: an invalid decimal.NullDecimal means the line is
// unlimited. Balance is signed; a positive balance means the owner has already
// issued that much to the partner.
//
// Stores implement a single read:
//
//	OutgoingCreditLines(ctx, alias) ([]CreditLine, error)
//
// MemoryStore keeps lines in process and can be filled from a YAML snapshot
// (LoadYAML, LoadFile). The pgstore subpackage reads the same records from
// PostgreSQL.
package creditline
