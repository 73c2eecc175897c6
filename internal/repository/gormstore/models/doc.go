// Package models contains the GORM table mappings for the board entities
// and their conversions to and from the domain types.
package models
