package color

// Pair is a resolved foreground/background combination.
type Pair struct {
	FG RGB
	BG RGB
}

// Channel is an optional color override.
type Channel struct {
	Value RGB
	Set   bool
}

// Use returns a Channel that overrides with c.
func Use(c RGB) Channel { return Channel{Value: c, Set: true} }

// Overlay overrides some channels of whatever was drawn underneath.
type Overlay struct {
	FG Channel
	BG Channel
}

// Over resolves o on top of base. Channels o leaves unset keep the base value.
func (o Overlay) Over(base Pair) Pair {
	if o.FG.Set {
		base.FG = o.FG.Value
	}
	if o.BG.Set {
		base.BG = o.BG.Value
	}
	return base
}
