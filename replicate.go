package trellis

// Replicate tiles count independent instances of a prototype along axis with
// zero gap. The first instance sits at offset 0 and instance i at
// i * extent, where extent is the first instance's measured size along axis.
// Prototypes are expected to be centered (see Extrude) so neighbours abut.
//
// A count of one returns the single instance unwrapped. Every instance comes
// from its own factory call; nothing is shared between units.
func Replicate(name string, factory func() *Node, count int, axis Axis) (*Node, error) {
	if err := requireCount("unit count", count); err != nil {
		return nil, err
	}

	first := factory()
	if count == 1 {
		return first, nil
	}
	step := Measure(first).Along(axis)
	dir := axis.Unit()

	group := NewGroup(name)
	group.AddChild(first)
	for i := 1; i < count; i++ {
		unit := factory()
		unit.Position = unit.Position.Add(dir.Mul(float64(i) * step))
		group.AddChild(unit)
	}

	logger.Debug().
		Str("group", name).
		Int("count", count).
		Stringer("axis", axis).
		Float64("step", step).
		Msg("replicated units")
	return group, nil
}
