// Package repository holds the MongoDB stores for the three top-level
// entities. Every single-document mutation here is atomic; there is no
// in-process locking and no multi-document transaction.
package repository

// MongoDB collections.
const (
	CollectionUsers       = "users"
	CollectionRestaurants = "restaurants"
	CollectionReviews     = "reviews"
)
