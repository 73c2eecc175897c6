// Package gormstore provides ORM-backed implementations of the board
// repositories. It uses GORM with either the PostgreSQL or the SQLite
// dialect and shares one generic CRUD implementation across entities.
package gormstore
