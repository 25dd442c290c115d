package storage

import "time"

// Meta carries the identity and lifecycle stamps shared by every entity.
// Embed it as the first field so id/createdAt/updatedAt marshal inline.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) meta() *Meta { return m }

// Record is satisfied by pointers to entities that embed Meta.
type Record interface {
	meta() *Meta
}
