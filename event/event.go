package event

// Event is the capability shared by everything that can occupy time in a
// score: chords, notes and rests. Containing structures hold heterogeneous
// []Event sequences and reach concrete kinds by type switch.
type Event interface {
	// Ticks returns the current duration in ticks.
	Ticks() int
}
