package model

// Region represents a National Olympic Committee region
type Region struct {
	NOC    string  `db:"noc" json:"NOC"`
	Region string  `db:"region" json:"region"`
	Notes  *string `db:"notes" json:"notes"`
}
