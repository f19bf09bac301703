package asteroids

// Lives counts the remaining ships. The HUD has a fixed number of icon
// slots; the count itself is not capped.
type Lives struct {
	Count int
	Slots int
}

// Icons returns how many life icons the HUD shows.
func (l Lives) Icons() int {
	return max(min(l.Count, l.Slots), 0)
}
