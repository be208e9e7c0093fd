package model

// Event represents a single Paralympic games
type Event struct {
	ID           int     `db:"id" json:"id"`
	Type         string  `db:"type" json:"type"`
	Year         int     `db:"year" json:"year"`
	Country      string  `db:"country" json:"country"`
	Host         string  `db:"host" json:"host"`
	Start        *string `db:"start_date" json:"start"`
	End          *string `db:"end_date" json:"end"`
	Duration     *int    `db:"duration" json:"duration"`
	Countries    *int    `db:"countries" json:"countries"`
	Events       *int    `db:"events" json:"events"`
	Sports       *int    `db:"sports" json:"sports"`
	Participants *int    `db:"participants" json:"participants"`
	Highlights   *string `db:"highlights" json:"highlights"`
}
