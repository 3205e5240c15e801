// internal/broadcast/frame.go
package broadcast

import (
	"fmt"
	"image/color"

	"github.com/vmihailenco/msgpack/v5"
)

const MsgTypeFrame = "frame"

// Entity is one drawable of a spectator frame in world units.
type Entity struct {
	Kind     string  `msgpack:"kind"`
	X        float32 `msgpack:"x"`
	Y        float32 `msgpack:"y"`
	Rotation float32 `msgpack:"rot"`
	Scale    float32 `msgpack:"scale"`
	Color    uint32  `msgpack:"color"` // 0xRRGGBBAA
}

// Beam is a laser segment.
type Beam struct {
	AX     float32 `msgpack:"ax"`
	AY     float32 `msgpack:"ay"`
	BX     float32 `msgpack:"bx"`
	BY     float32 `msgpack:"by"`
	Width  float32 `msgpack:"w"`
	Firing bool    `msgpack:"firing"`
}

// HUD is the scoreboard summary carried by every frame.
type HUD struct {
	Score         int     `msgpack:"score"`
	Lives         int     `msgpack:"lives"`
	Wave          int     `msgpack:"wave"`
	Combo         int     `msgpack:"combo"`
	Multiplier    float64 `msgpack:"mult"`
	BossHP        float64 `msgpack:"bossHp"` // fraction, 0 when no boss
	TimeRemaining float64 `msgpack:"time"`
	GameOver      bool    `msgpack:"gameOver"`
}

// Frame is the unit pushed to spectators.
type Frame struct {
	Type     string   `msgpack:"type"`
	RunID    string   `msgpack:"runId"`
	Mode     string   `msgpack:"mode"`
	Tick     uint64   `msgpack:"tick"`
	HUD      HUD      `msgpack:"hud"`
	Entities []Entity `msgpack:"entities"`
	Beams    []Beam   `msgpack:"beams"`
}

// Encode serializes a frame with msgpack.
func (f Frame) Encode() ([]byte, error) {
	if f.Type == "" {
		f.Type = MsgTypeFrame
	}
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame %d: %w", f.Tick, err)
	}
	return data, nil
}

// DecodeFrame is the inverse of Encode.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return f, nil
}

// PackColor packs an RGBA colour as 0xRRGGBBAA.
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
