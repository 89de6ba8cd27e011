package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds transient HUD state. The layer indicator fades out after
// each accepted layer switch.
type HUDData struct {
	Layer          int
	IndicatorAlpha float32
	indicator      *gween.Tween
}

// ShowLayer restarts the indicator for a new layer.
func (h *HUDData) ShowLayer(layer int, tween *gween.Tween) {
	h.Layer = layer
	h.IndicatorAlpha = 1
	h.indicator = tween
}

func (h *HUDData) Update(dt float64) {
	if h.indicator == nil {
		return
	}
	alpha, done := h.indicator.Update(float32(dt))
	h.IndicatorAlpha = alpha
	if done {
		h.IndicatorAlpha = 0
		h.indicator = nil
	}
}

var HUD = donburi.NewComponentType[HUDData]()
