package domain

import "github.com/shopspring/decimal"

type Team struct {
	ID      int64
	Name    string
	Acronym string
	Budget  decimal.Decimal
	Players []*Player

	// players detached by RemovePlayer since the team was loaded
	removed []*Player
}

type Player struct {
	ID       int64
	Name     string
	Position string
	Team     *Team
}

func NewTeam(name, acronym string, budget decimal.Decimal) *Team {
	return &Team{
		Name:    name,
		Acronym: acronym,
		Budget:  budget,
		Players: []*Player{},
	}
}

func NewPlayer(name, position string) *Player {
	return &Player{
		Name:     name,
		Position: position,
	}
}

// AddPlayer attaches p to the team and points p back at it.
// A player already present in the collection is replaced in place, never duplicated.
func (t *Team) AddPlayer(p *Player) {
	if p == nil {
		return
	}
	if p.Team != nil && p.Team != t {
		p.Team.RemovePlayer(p)
	}
	p.Team = t
	t.forgetRemoved(p)
	for i, existing := range t.Players {
		if samePlayer(existing, p) {
			t.Players[i] = p
			return
		}
	}
	t.Players = append(t.Players, p)
}

// RemovePlayer detaches p from the team and clears its back-reference.
// A player that is not in the collection is left untouched.
func (t *Team) RemovePlayer(p *Player) {
	if p == nil {
		return
	}
	found := false
	kept := t.Players[:0]
	for _, existing := range t.Players {
		if samePlayer(existing, p) {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	for i := len(kept); i < len(t.Players); i++ {
		t.Players[i] = nil
	}
	t.Players = kept
	if !found {
		return
	}
	if p.Team == t {
		p.Team = nil
	}
	t.removed = append(t.removed, p)
}

// Orphans returns players removed from the team that were not attached to any team afterwards.
// Those rows must be deleted when the team is persisted.
func (t *Team) Orphans() []*Player {
	var orphans []*Player
	for _, p := range t.removed {
		if p.Team == nil && p.ID != 0 {
			orphans = append(orphans, p)
		}
	}
	return orphans
}

// ClearRemoved forgets detached players once the store has processed them.
func (t *Team) ClearRemoved() {
	t.removed = nil
}

func (t *Team) HasPlayer(p *Player) bool {
	for _, existing := range t.Players {
		if samePlayer(existing, p) {
			return true
		}
	}
	return false
}

func (t *Team) forgetRemoved(p *Player) {
	kept := t.removed[:0]
	for _, r := range t.removed {
		if !samePlayer(r, p) {
			kept = append(kept, r)
		}
	}
	t.removed = kept
}

// TeamName returns the owning team's name, or FreeAgent when the player has no team.
func (p *Player) TeamName() string {
	if p.Team == nil {
		return FreeAgent
	}
	return p.Team.Name
}

func (p *Player) TeamID() *int64 {
	if p.Team == nil || p.Team.ID == 0 {
		return nil
	}
	id := p.Team.ID
	return &id
}

func samePlayer(a, b *Player) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.ID != 0 && a.ID == b.ID
}
