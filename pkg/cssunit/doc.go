// Package cssunit validates and normalizes CSS length values used for
// inline widget sizing. Controls that accept a width delegate here so an
// invalid length fails at construction time instead of producing broken
// style attributes.
package cssunit
