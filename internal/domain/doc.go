// Package domain defines the ledger's data model and the contracts between
// the account service, its persistence and the front end.
// It contains plain types and interfaces only.
package domain
