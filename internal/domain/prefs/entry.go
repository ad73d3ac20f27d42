package prefs

import "time"

// Entry is one opaque key/value pair. Value holds JSON text and is never
// interpreted by the database.
type Entry struct {
	Key   string `gorm:"type:text;primaryKey" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "preference_entries"
}
