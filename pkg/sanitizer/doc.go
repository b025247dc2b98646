// Package sanitizer normalises free-text input (hotel names, search queries and booking
// references) before it reaches validation or storage. Every function is a pure string
// transformation built from a Pipeline of Strategies.
package sanitizer
