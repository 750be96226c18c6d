// Package entities contains core business entities.
package entities

// Participant owns one column group in the side-by-side layout.
type Participant struct {
	ID    string
	Label string
}

// DisplayLabel returns the label, falling back to the id.
func (p Participant) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}
