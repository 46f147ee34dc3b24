package models

import (
	"time"

	"github.com/Conceptual-Machines/ikovsky-api/internal/params"
	"gorm.io/gorm"
)

// Song is a generated piece and its encoded MIDI
type Song struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `gorm:"not null" json:"songName"`
	MidiBase64 string `gorm:"type:text;not null" json:"midiBase64"`
	Seed       string `gorm:"type:varchar(20)" json:"seed"` // decimal, uint64 overflows bigint
	Key        string `json:"key"`
	Tempo      int    `json:"tempo"`
	TimeSig    string `json:"timeSig"`
	Parts      int    `json:"parts"`
	Bars       int    `json:"bars"`
	Saved      bool   `gorm:"default:false;index" json:"saved"`
}

// GenerateSongRequest is the body of a song generation call
type GenerateSongRequest struct {
	params.Request `yaml:",inline"`

	// Optional seed for reproducibility. JSON carries it as a string so
	// clients that parse numbers as doubles keep all 64 bits.
	Seed *uint64 `json:"seed,string,omitempty" yaml:"seed,omitempty" form:"seed"`
}

// SongResponse is returned for generated and fetched songs
type SongResponse struct {
	ID         string `json:"id"`
	SongName   string `json:"songName"`
	MidiBase64 string `json:"midiBase64"`
	Seed       uint64 `json:"seed,string"`
	Saved      bool   `json:"saved"`
}
