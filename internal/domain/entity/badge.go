package entity

// Badge is an achievement that moves from locked to unlocked exactly once.
// Condition names the rule that unlocks it.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}
