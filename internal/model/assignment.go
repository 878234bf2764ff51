package model

// Assignment maps one game onto one TV for one time slot. A game may fan
// out to several TVs; a TV never shows two different games at the same
// date and time slot.
type Assignment struct {
	GameID    string `json:"game_id"`
	TVNumber  int    `json:"tv_number"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Reasoning string `json:"reasoning"`
}

// Conflict records a pair of assignments that put different games on the
// same TV at the same date and time slot. Conflicts are reported, never
// silently dropped.
type Conflict struct {
	TVNumber int    `json:"tv_number"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	GameA    string `json:"game_a"`
	GameB    string `json:"game_b"`
}
