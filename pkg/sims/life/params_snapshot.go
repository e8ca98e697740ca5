package life

import "termgol/pkg/core"

// Parameters reports the world state and configuration for debug overlays.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.size.W),
				core.IntParam("h", "Height", w.size.H),
				core.Uint64Param("generation", "Generation", w.generation),
				core.IntParam("population", "Population", w.Population()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rules", "Rule", w.cfg.Rule.String()),
				core.StringParam("alive", "Alive color", w.cfg.Alive.Hex()),
				core.StringParam("dead", "Dead color", w.cfg.Dead.Hex()),
				core.IntParam("fading_speed", "Fading speed", int(w.cfg.FadingSpeed)),
				core.BoolParam("rainbow", "Rainbow", w.cfg.Rainbow),
			},
		},
	}}
}
