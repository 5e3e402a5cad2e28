package domain

// Room is a caller-supplied room identifier. Non-empty; no normalization
// across case or whitespace — two spellings are two rooms.
type Room string
