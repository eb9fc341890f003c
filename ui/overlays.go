package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/handrule/components"
)

// OverlayDescriptor defines a scene layer that can be toggled.
type OverlayDescriptor struct {
	Layer       components.Layer // Layer this overlay shows or hides
	Name        string           // Display name
	Description string           // What this overlay shows
	Key         int32            // Keyboard key to toggle (0 = no key)
	KeyLabel    string           // Key label for display (e.g., "1")
	Category    string           // Grouping (e.g., "reference", "motion")
}

// OverlayRegistry manages per-layer visibility and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byLayer     map[components.Layer]OverlayDescriptor
	enabled     map[components.Layer]bool
}

// NewOverlayRegistry creates a registry with one overlay per scene layer,
// all enabled.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byLayer: make(map[components.Layer]OverlayDescriptor),
		enabled: make(map[components.Layer]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the standard scene layers.
func (r *OverlayRegistry) registerDefaults() {
	// Reference frame
	r.Register(OverlayDescriptor{
		Layer:       components.LayerAxes,
		Name:        "Axes",
		Description: "Coordinate axes with X/Y/Z letters",
		Key:         rl.KeyOne,
		KeyLabel:    "1",
		Category:    "reference",
	})
	r.Register(OverlayDescriptor{
		Layer:       components.LayerCircle,
		Name:        "Rotation Path",
		Description: "Circle traced by the marker",
		Key:         rl.KeyTwo,
		KeyLabel:    "2",
		Category:    "reference",
	})

	// Motion
	r.Register(OverlayDescriptor{
		Layer:       components.LayerMarker,
		Name:        "Marker",
		Description: "Point moving around the circle",
		Key:         rl.KeyThree,
		KeyLabel:    "3",
		Category:    "motion",
	})
	r.Register(OverlayDescriptor{
		Layer:       components.LayerRadial,
		Name:        "Radius",
		Description: "Line from the origin to the marker",
		Key:         rl.KeyFour,
		KeyLabel:    "4",
		Category:    "motion",
	})
	r.Register(OverlayDescriptor{
		Layer:       components.LayerVelocity,
		Name:        "Velocity",
		Description: "Tangential direction of motion",
		Key:         rl.KeyFive,
		KeyLabel:    "5",
		Category:    "motion",
	})

	// Right-hand rule
	r.Register(OverlayDescriptor{
		Layer:       components.LayerHand,
		Name:        "Hand",
		Description: "Hand turning with the rotation",
		Key:         rl.KeySix,
		KeyLabel:    "6",
		Category:    "rule",
	})
	r.Register(OverlayDescriptor{
		Layer:       components.LayerAngular,
		Name:        "Angular Vector",
		Description: "Angular displacement along the rotation axis",
		Key:         rl.KeySeven,
		KeyLabel:    "7",
		Category:    "rule",
	})
	r.Register(OverlayDescriptor{
		Layer:       components.LayerLabels,
		Name:        "Captions",
		Description: "Explanatory text",
		Key:         rl.KeyEight,
		KeyLabel:    "8",
		Category:    "rule",
	})
}

// Register adds an overlay to the registry. Registering a layer twice
// replaces its descriptor.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, exists := r.byLayer[desc.Layer]; exists {
		for i := range r.descriptors {
			if r.descriptors[i].Layer == desc.Layer {
				r.descriptors[i] = desc
			}
		}
	} else {
		r.descriptors = append(r.descriptors, desc)
	}
	r.byLayer[desc.Layer] = desc
	r.enabled[desc.Layer] = true
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(layer components.Layer) bool {
	if _, ok := r.byLayer[layer]; !ok {
		return false
	}
	r.enabled[layer] = !r.enabled[layer]
	return r.enabled[layer]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(layer components.Layer, enabled bool) {
	if _, ok := r.byLayer[layer]; !ok {
		return
	}
	r.enabled[layer] = enabled
}

// IsEnabled reports whether a layer is drawn. Layers without a registered
// overlay are always drawn.
func (r *OverlayRegistry) IsEnabled(layer components.Layer) bool {
	if _, ok := r.byLayer[layer]; !ok {
		return true
	}
	return r.enabled[layer]
}

// Get returns an overlay descriptor by layer.
func (r *OverlayRegistry) Get(layer components.Layer) (OverlayDescriptor, bool) {
	desc, ok := r.byLayer[layer]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the layer and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (components.Layer, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.Layer, r.Toggle(desc.Layer), true
		}
	}
	return 0, false, false
}

// EnableAll turns every overlay back on.
func (r *OverlayRegistry) EnableAll() {
	for _, desc := range r.descriptors {
		r.enabled[desc.Layer] = true
	}
}

// HiddenLayers returns the currently disabled layers in registration order.
func (r *OverlayRegistry) HiddenLayers() []components.Layer {
	var result []components.Layer
	for _, desc := range r.descriptors {
		if !r.enabled[desc.Layer] {
			result = append(result, desc.Layer)
		}
	}
	return result
}
