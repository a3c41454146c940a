// internal/entity/colony.go
package entity

import "go-ant-colony/internal/component"

// Colony owns the ordered ant collection. Index 0 is the lead ant.
type Colony struct {
	ants []*component.Ant
}

func NewColony() *Colony {
	return &Colony{}
}

// Ants returns the live slice. Callers must not retain it across removals.
func (c *Colony) Ants() []*component.Ant {
	return c.ants
}

func (c *Colony) Len() int {
	return len(c.ants)
}

// At returns the ant at index i, or nil.
func (c *Colony) At(i int) *component.Ant {
	if i < 0 || i >= len(c.ants) {
		return nil
	}
	return c.ants[i]
}

// Lead is the first ant, or nil for an empty colony.
func (c *Colony) Lead() *component.Ant {
	return c.At(0)
}

func (c *Colony) add(a *component.Ant) {
	c.ants = append(c.ants, a)
}

// remove drops a by identity and reports whether it was present.
func (c *Colony) remove(a *component.Ant) bool {
	for i, other := range c.ants {
		if other == a {
			c.ants = append(c.ants[:i], c.ants[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Colony) clear() {
	c.ants = nil
}
