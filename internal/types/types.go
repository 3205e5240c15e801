package types

// EntityID identifies a live game object inside one session.
type EntityID uint64
