package domain

import (
	"fmt"
	"math"
	"sort"
)

// Waveform is the oscillator shape.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// RampKind selects how a parameter reaches an automation event's value.
type RampKind string

const (
	RampSet         RampKind = "set"
	RampLinear      RampKind = "linear"
	RampExponential RampKind = "exponential"
)

// AutomationEvent schedules a parameter value at a time offset in seconds.
type AutomationEvent struct {
	Kind  RampKind `json:"kind"`
	Value float64  `json:"value"`
	At    float64  `json:"at"`
}

// ButtonFeedback is the transient press effect of the button that triggered a sound.
type ButtonFeedback struct {
	Scale         float64 `json:"scale"`
	Highlight     string  `json:"highlight,omitempty"`
	RevertAfterMs int64   `json:"revert_after_ms"`
}

// SoundPreset is one synthesised effect: a single oscillator through a gain envelope.
type SoundPreset struct {
	Type      string            `json:"type"`
	Label     string            `json:"label"`
	Waveform  Waveform          `json:"waveform"`
	Frequency []AutomationEvent `json:"frequency"`
	Gain      []AutomationEvent `json:"gain"`
	Duration  float64           `json:"duration"` // oscillator stop time in seconds
	Feedback  ButtonFeedback    `json:"feedback"`
}

func set(v, at float64) AutomationEvent { return AutomationEvent{Kind: RampSet, Value: v, At: at} }
func lin(v, at float64) AutomationEvent { return AutomationEvent{Kind: RampLinear, Value: v, At: at} }
func exp(v, at float64) AutomationEvent { return AutomationEvent{Kind: RampExponential, Value: v, At: at} }

var panelFeedback = ButtonFeedback{Scale: 0.95, Highlight: "rgba(255, 68, 68, 0.5)", RevertAfterMs: 300}

// DefaultSoundPresets returns the sound panel effects plus the hero "rev" button.
func DefaultSoundPresets() []SoundPreset {
	return []SoundPreset{
		{
			Type: "engine", Label: "Engine Start", Waveform: WaveSawtooth,
			Frequency: []AutomationEvent{set(80, 0), exp(120, 1)},
			Gain:      []AutomationEvent{set(0.3, 0), exp(0.01, 1.5)},
			Duration:  1.5, Feedback: panelFeedback,
		},
		{
			Type: "horn", Label: "Horn", Waveform: WaveSquare,
			Frequency: []AutomationEvent{set(440, 0)},
			Gain:      []AutomationEvent{set(0.5, 0), exp(0.01, 0.5)},
			Duration:  0.5, Feedback: panelFeedback,
		},
		{
			Type: "brake", Label: "Brake Screech", Waveform: WaveSawtooth,
			Frequency: []AutomationEvent{set(200, 0), lin(50, 0.8)},
			Gain:      []AutomationEvent{set(0.4, 0), exp(0.01, 0.8)},
			Duration:  0.8, Feedback: panelFeedback,
		},
		{
			Type: "turbo", Label: "Turbo Whistle", Waveform: WaveSine,
			Frequency: []AutomationEvent{set(100, 0), exp(300, 0.3), exp(150, 1)},
			Gain:      []AutomationEvent{set(0.3, 0), exp(0.01, 1)},
			Duration:  1, Feedback: panelFeedback,
		},
		{
			Type: "tire", Label: "Tire Squeal", Waveform: WaveSawtooth,
			Frequency: []AutomationEvent{set(800, 0), lin(400, 1.2)},
			Gain:      []AutomationEvent{set(0.4, 0), exp(0.01, 1.2)},
			Duration:  1.2, Feedback: panelFeedback,
		},
		{
			Type: "ignition", Label: "Ignition", Waveform: WaveSquare,
			Frequency: []AutomationEvent{set(50, 0), exp(200, 0.2), exp(100, 1)},
			Gain:      []AutomationEvent{set(0.5, 0), exp(0.01, 1)},
			Duration:  1, Feedback: panelFeedback,
		},
		{
			Type: "rev", Label: "Rev the Engine", Waveform: WaveSawtooth,
			Frequency: []AutomationEvent{set(80, 0), exp(120, 0.5), exp(60, 2)},
			Gain:      []AutomationEvent{set(0.3, 0), exp(0.01, 2)},
			Duration:  2, Feedback: ButtonFeedback{Scale: 0.95, RevertAfterMs: 200},
		},
	}
}

// FindSoundPreset looks a preset up by type.
func FindSoundPreset(presets []SoundPreset, soundType string) (SoundPreset, error) {
	for _, p := range presets {
		if p.Type == soundType {
			return p, nil
		}
	}
	return SoundPreset{}, NewNotFoundError(fmt.Sprintf("sound not found: %s", soundType))
}

// Validate checks that the preset can be synthesised.
func (p SoundPreset) Validate() error {
	if p.Duration <= 0 {
		return NewInvalidInputError(fmt.Sprintf("sound %q has no duration", p.Type))
	}
	for _, events := range [][]AutomationEvent{p.Frequency, p.Gain} {
		if len(events) == 0 || events[0].Kind != RampSet {
			return NewInvalidInputError(fmt.Sprintf("sound %q automation must start with a set event", p.Type))
		}
		if !sort.SliceIsSorted(events, func(i, j int) bool { return events[i].At < events[j].At }) {
			return NewInvalidInputError(fmt.Sprintf("sound %q automation events are out of order", p.Type))
		}
	}
	return nil
}

// ValueAt evaluates an automation timeline at t seconds.
// A ramp runs from the previous event's value and time to its own; after the last event the value holds.
// An exponential ramp between values of different sign (or from zero) holds the previous value.
func ValueAt(events []AutomationEvent, t float64) float64 {
	if len(events) == 0 {
		return 0
	}
	prevV, prevT := events[0].Value, events[0].At
	for _, e := range events {
		if t < e.At {
			span := e.At - prevT
			if e.Kind == RampSet || span <= 0 {
				return prevV
			}
			frac := (t - prevT) / span
			if frac < 0 {
				return prevV
			}
			switch e.Kind {
			case RampLinear:
				return prevV + (e.Value-prevV)*frac
			case RampExponential:
				if prevV == 0 || prevV*e.Value <= 0 {
					return prevV
				}
				return prevV * math.Pow(e.Value/prevV, frac)
			}
			return prevV
		}
		prevV, prevT = e.Value, e.At
	}
	return prevV
}

func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Synthesize renders the preset as mono samples in [-1, 1].
func Synthesize(p SoundPreset, sampleRate int) []float64 {
	n := int(math.Round(p.Duration * float64(sampleRate)))
	out := make([]float64, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		out[i] = oscillate(p.Waveform, phase) * ValueAt(p.Gain, t)
		phase += ValueAt(p.Frequency, t) / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return out
}
