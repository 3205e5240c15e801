// internal/app/spectator.go
package app

import (
	"go-radial-arena/internal/broadcast"
)

// SpectatorFrame condenses the current tick for the spectator stream.
// Particles are left out; viewers only need the gameplay objects.
func (g *Game) SpectatorFrame() broadcast.Frame {
	hud := g.HUD()
	frame := g.Frame()

	out := broadcast.Frame{
		Type:  broadcast.MsgTypeFrame,
		RunID: g.RunID,
		Mode:  string(g.Rules.Mode),
		Tick:  g.Tick,
		HUD: broadcast.HUD{
			Score:         hud.Score,
			Lives:         hud.Lives,
			Wave:          hud.Wave,
			Combo:         hud.Combo,
			Multiplier:    hud.ComboMultiplier,
			BossHP:        hud.BossHP,
			TimeRemaining: hud.TimeRemaining,
			GameOver:      hud.GameOver,
		},
		Entities: make([]broadcast.Entity, 0, len(frame.Sprites)),
	}

	for _, s := range frame.Sprites {
		if s.Kind == SpriteParticle || s.Kind == SpriteDebris {
			continue
		}
		kind := string(s.Kind)
		if s.Variant != "" {
			kind += ":" + s.Variant
		}
		out.Entities = append(out.Entities, broadcast.Entity{
			Kind:     kind,
			X:        float32(s.X),
			Y:        float32(s.Y),
			Rotation: float32(s.Rotation),
			Scale:    float32(s.Scale),
			Color:    broadcast.PackColor(s.Color),
		})
	}
	for _, l := range frame.Lasers {
		out.Beams = append(out.Beams, broadcast.Beam{
			AX:     float32(l.AX),
			AY:     float32(l.AY),
			BX:     float32(l.BX),
			BY:     float32(l.BY),
			Width:  float32(l.Width),
			Firing: l.Firing,
		})
	}
	return out
}
