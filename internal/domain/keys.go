package domain

// KeyPrefix namespaces every database key of the store.
const KeyPrefix = "fieldstore:"
