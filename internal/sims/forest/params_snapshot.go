package forest

import (
	"strconv"
	"time"

	"mini-forest/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", w.cfg.Size),
				int64Param("seed", "Seed", w.cfg.Seed),
				durationParam("period", "Tick period", w.cfg.Period),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				intParam("slow_max_age", "Slow max age", params.SlowMaxAge),
				intParam("slow_spread_radius", "Slow spread radius", params.SlowSpreadRadius),
				intParam("slow_spread_attempts", "Slow spread attempts", params.SlowSpreadAttempts),
				intParam("fast_max_age", "Fast max age", params.FastMaxAge),
				intParam("fast_spread_radius", "Fast spread radius", params.FastSpreadRadius),
				intParam("fast_spread_attempts", "Fast spread attempts", params.FastSpreadAttempts),
				intParam("tree_fall_length", "Tree fall length", params.TreeFallLength),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("burning_max_age", "Burning max age", params.BurningMaxAge),
				intParam("fire_spread_radius", "Fire spread radius", params.FireSpreadRadius),
				intParam("fire_spread_attempts", "Fire spread attempts", params.FireSpreadAttempts),
				intParam("pioneer_odds", "Pioneer odds (1 in N)", params.PioneerOdds),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}
