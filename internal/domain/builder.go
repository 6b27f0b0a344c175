package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// PartCategory labels both a slot and the parts that fit it.
type PartCategory string

const (
	CategoryEngine   PartCategory = "engine"
	CategoryBody     PartCategory = "body"
	CategoryWheels   PartCategory = "wheels"
	CategoryInterior PartCategory = "interior"
)

// Part is a draggable unit tagged with the category it satisfies.
type Part struct {
	ID       string       `json:"id"`
	Category PartCategory `json:"category"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
}

// Content is what a slot displays once the part is dropped on it.
func (p Part) Content() string {
	return strings.TrimSpace(p.Icon + " " + p.Name)
}

// PartCatalog lists the slots (one per category, in display order) and candidate parts.
type PartCatalog struct {
	Categories []PartCategory
	Parts      []Part
}

// DefaultPartCatalog returns the four-slot build used on the site.
func DefaultPartCatalog() PartCatalog {
	return PartCatalog{
		Categories: []PartCategory{CategoryEngine, CategoryBody, CategoryWheels, CategoryInterior},
		Parts: []Part{
			{ID: "v8-engine", Category: CategoryEngine, Name: "V8 Engine", Icon: "🔧"},
			{ID: "electric-motor", Category: CategoryEngine, Name: "Electric Motor", Icon: "⚡"},
			{ID: "sports-body", Category: CategoryBody, Name: "Sports Body", Icon: "🏎️"},
			{ID: "sedan-body", Category: CategoryBody, Name: "Sedan Body", Icon: "🚗"},
			{ID: "racing-wheels", Category: CategoryWheels, Name: "Racing Wheels", Icon: "🛞"},
			{ID: "offroad-wheels", Category: CategoryWheels, Name: "Off-road Wheels", Icon: "⚙️"},
			{ID: "leather-interior", Category: CategoryInterior, Name: "Leather Interior", Icon: "💺"},
			{ID: "sport-interior", Category: CategoryInterior, Name: "Sport Interior", Icon: "🎛️"},
		},
	}
}

// Validate checks that every category has exactly one slot and at least one part.
func (c PartCatalog) Validate() error {
	if len(c.Categories) == 0 {
		return NewInvalidInputError("part catalog has no categories")
	}
	seen := make(map[PartCategory]int, len(c.Categories))
	for _, cat := range c.Categories {
		if _, dup := seen[cat]; dup {
			return NewInvalidInputError(fmt.Sprintf("category %q has more than one slot", cat))
		}
		seen[cat] = 0
	}
	ids := make(map[string]bool, len(c.Parts))
	for _, p := range c.Parts {
		if ids[p.ID] {
			return NewInvalidInputError(fmt.Sprintf("duplicate part id %q", p.ID))
		}
		ids[p.ID] = true
		if _, ok := seen[p.Category]; !ok {
			return NewInvalidInputError(fmt.Sprintf("part %q has unknown category %q", p.ID, p.Category))
		}
		seen[p.Category]++
	}
	for cat, n := range seen {
		if n == 0 {
			return NewInvalidInputError(fmt.Sprintf("category %q has no parts", cat))
		}
	}
	return nil
}

func (c PartCatalog) Part(id string) (Part, bool) {
	for _, p := range c.Parts {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

func (c PartCatalog) HasSlot(cat PartCategory) bool {
	for _, existing := range c.Categories {
		if existing == cat {
			return true
		}
	}
	return false
}

// PlaceholderLabel is the text of an empty slot: "engine" -> "Engine Here", "fuelTank" -> "Fuel Tank Here".
func PlaceholderLabel(cat PartCategory) string {
	var b strings.Builder
	for i, r := range string(cat) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String() + " Here"
}

// BuildState is the progress of one car build.
type BuildState struct {
	// Filled maps each satisfied category to the part placed in its slot.
	Filled             map[PartCategory]string `json:"filled"`
	SlotErrors         map[PartCategory]bool   `json:"slot_errors,omitempty"`
	CompletionNotified bool                    `json:"completion_notified"`
	Notice             *CompletionNotice       `json:"notice,omitempty"`
}

// NewBuildState returns an empty build.
func NewBuildState() BuildState {
	return BuildState{Filled: map[PartCategory]string{}}
}

func (s BuildState) clone() BuildState {
	out := BuildState{
		Filled:             make(map[PartCategory]string, len(s.Filled)),
		CompletionNotified: s.CompletionNotified,
		Notice:             s.Notice,
	}
	for k, v := range s.Filled {
		out.Filled[k] = v
	}
	if len(s.SlotErrors) > 0 {
		out.SlotErrors = make(map[PartCategory]bool, len(s.SlotErrors))
		for k, v := range s.SlotErrors {
			out.SlotErrors[k] = v
		}
	}
	return out
}

// Placed reports whether the part is already sitting in a slot.
func (s BuildState) Placed(partID string) bool {
	for _, id := range s.Filled {
		if id == partID {
			return true
		}
	}
	return false
}

// Complete reports whether every category of the catalog is filled.
func (s BuildState) Complete(c PartCatalog) bool {
	for _, cat := range c.Categories {
		if _, ok := s.Filled[cat]; !ok {
			return false
		}
	}
	return true
}

// FilledCategories returns the filled-set in catalog order.
func (s BuildState) FilledCategories(c PartCatalog) []PartCategory {
	out := make([]PartCategory, 0, len(s.Filled))
	for _, cat := range c.Categories {
		if _, ok := s.Filled[cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

// DropResult names what a drop did.
type DropResult string

const (
	DropPlaced            DropResult = "placed"
	DropMismatch          DropResult = "mismatch"
	DropPartAlreadyPlaced DropResult = "part_already_placed"
	DropSlotAlreadyFilled DropResult = "slot_already_filled"
)

// DropOutcome describes what a Drop call changed.
type DropOutcome struct {
	Result    DropResult   `json:"result"`
	PartID    string       `json:"part_id"`
	Slot      PartCategory `json:"slot"`
	Completed bool         `json:"completed"`
}

// Drop applies a part dropped on a slot.
// Only a matching part on an empty slot mutates the filled-set; Completed is true
// on the single drop that fills the last category.
func Drop(c PartCatalog, s BuildState, partID string, slot PartCategory) (BuildState, DropOutcome, error) {
	part, ok := c.Part(partID)
	if !ok {
		return s, DropOutcome{}, NewNotFoundError(fmt.Sprintf("part not found: %s", partID))
	}
	if !c.HasSlot(slot) {
		return s, DropOutcome{}, NewNotFoundError(fmt.Sprintf("slot not found: %s", slot))
	}

	out := DropOutcome{PartID: partID, Slot: slot}
	switch {
	case s.Placed(partID):
		out.Result = DropPartAlreadyPlaced
		return s, out, nil
	case s.Filled[slot] != "":
		out.Result = DropSlotAlreadyFilled
		return s, out, nil
	case part.Category != slot:
		next := s.clone()
		if next.SlotErrors == nil {
			next.SlotErrors = map[PartCategory]bool{}
		}
		next.SlotErrors[slot] = true
		out.Result = DropMismatch
		return next, out, nil
	}

	next := s.clone()
	next.Filled[slot] = partID
	delete(next.SlotErrors, slot)
	out.Result = DropPlaced
	if next.Complete(c) && !next.CompletionNotified {
		next.CompletionNotified = true
		out.Completed = true
	}
	return next, out, nil
}

// ClearSlotError reverts the transient mismatch mark of a slot.
func ClearSlotError(s BuildState, slot PartCategory) BuildState {
	if !s.SlotErrors[slot] {
		return s
	}
	next := s.clone()
	delete(next.SlotErrors, slot)
	return next
}

// ResetBuild returns an empty build: every part draggable, every slot back to its placeholder.
func ResetBuild() BuildState {
	return NewBuildState()
}

// CompletionMessage is shown once the car is complete.
const CompletionMessage = "🎉 Congratulations! You've built a complete car!"

type SlotPulse struct {
	Slot    PartCategory `json:"slot"`
	DelayMs int64        `json:"delay_ms"`
}

// CompletionNotice is attached to the build a short delay after completion.
type CompletionNotice struct {
	Message   string      `json:"message"`
	Animation string      `json:"animation"`
	Pulses    []SlotPulse `json:"pulses"`
}

// NewCompletionNotice staggers a pulse over the filled slots in catalog order.
func NewCompletionNotice(c PartCatalog, s BuildState, staggerMs int64) CompletionNotice {
	filled := s.FilledCategories(c)
	pulses := make([]SlotPulse, len(filled))
	for i, cat := range filled {
		pulses[i] = SlotPulse{Slot: cat, DelayMs: int64(i) * staggerMs}
	}
	return CompletionNotice{Message: CompletionMessage, Animation: "pulse 0.5s ease-in-out", Pulses: pulses}
}

type SlotView struct {
	Category PartCategory `json:"category"`
	Label    string       `json:"label"`
	Filled   bool         `json:"filled"`
	PartID   string       `json:"part_id,omitempty"`
	Error    bool         `json:"error"`
}

type PartView struct {
	ID        string       `json:"id"`
	Category  PartCategory `json:"category"`
	Name      string       `json:"name"`
	Icon      string       `json:"icon"`
	Draggable bool         `json:"draggable"`
	Opacity   float64      `json:"opacity"`
}

// BuilderView is the render description of the builder.
type BuilderView struct {
	Slots    []SlotView        `json:"slots"`
	Parts    []PartView        `json:"parts"`
	Filled   []PartCategory    `json:"filled"`
	Complete bool              `json:"complete"`
	Notice   *CompletionNotice `json:"notice,omitempty"`
}

// RenderBuild describes slots and parts for the given state.
func RenderBuild(c PartCatalog, s BuildState) BuilderView {
	view := BuilderView{
		Slots:    make([]SlotView, 0, len(c.Categories)),
		Parts:    make([]PartView, 0, len(c.Parts)),
		Filled:   s.FilledCategories(c),
		Complete: s.Complete(c),
		Notice:   s.Notice,
	}
	for _, cat := range c.Categories {
		sv := SlotView{Category: cat, Label: PlaceholderLabel(cat), Error: s.SlotErrors[cat]}
		if id, ok := s.Filled[cat]; ok {
			if p, found := c.Part(id); found {
				sv.Label = p.Content()
			}
			sv.Filled = true
			sv.PartID = id
		}
		view.Slots = append(view.Slots, sv)
	}
	for _, p := range c.Parts {
		pv := PartView{ID: p.ID, Category: p.Category, Name: p.Name, Icon: p.Icon, Draggable: true, Opacity: 1}
		if s.Placed(p.ID) {
			pv.Draggable = false
			pv.Opacity = 0.5
		}
		view.Parts = append(view.Parts, pv)
	}
	return view
}
