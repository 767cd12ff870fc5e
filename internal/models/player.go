package models

// Player represents a person seated at the table
type Player struct {
	// Name is the display name of the player and its identity
	Name string `json:"name"`
}

// String returns the player's name
func (p Player) String() string {
	return p.Name
}
