package domain

import "fmt"

// CarCard is one card of the car gallery.
type CarCard struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Info  string `json:"info"`
}

// FilterAll shows every card.
const FilterAll = "all"

// Gallery holds the cards in display order and the display names of filter categories.
type Gallery struct {
	Cards         []CarCard
	CategoryNames map[string]string
}

// DefaultGallery returns the cards shown on the site.
func DefaultGallery() Gallery {
	return Gallery{
		Cards: []CarCard{
			{
				Type:  "sports",
				Title: "Sports Car Details",
				Info:  "High-performance engineering meets sleek design. Features include turbocharged engine, carbon fiber body, and advanced aerodynamics.",
			},
			{
				Type:  "luxury",
				Title: "Luxury Sedan Details",
				Info:  "Premium comfort with leather seating, advanced infotainment system, and whisper-quiet cabin with superior ride quality.",
			},
			{
				Type:  "suv",
				Title: "SUV Details",
				Info:  "Versatile family vehicle with all-wheel drive, spacious interior, advanced safety features, and excellent cargo capacity.",
			},
			{
				Type:  "electric",
				Title: "Electric Vehicle Details",
				Info:  "Zero emissions technology with fast charging capability, regenerative braking, and cutting-edge battery management system.",
			},
		},
		CategoryNames: map[string]string{
			"sports":   "Sports Cars",
			"luxury":   "Luxury Sedans",
			"suv":      "SUVs & Trucks",
			"electric": "Electric Vehicles",
			"classic":  "Classic Cars",
			"racing":   "Racing Cars",
		},
	}
}

// Details returns the card of the given car type.
func (g Gallery) Details(carType string) (CarCard, error) {
	for _, c := range g.Cards {
		if c.Type == carType {
			return c, nil
		}
	}
	return CarCard{}, NewNotFoundError(fmt.Sprintf("car type not found: %s", carType))
}

// DisplayName falls back to the raw category for names the gallery does not know.
func (g Gallery) DisplayName(category string) string {
	if name, ok := g.CategoryNames[category]; ok {
		return name
	}
	return category
}

type CardVisibility struct {
	Type      string `json:"type"`
	Visible   bool   `json:"visible"`
	Animation string `json:"animation,omitempty"`
}

type FilterMessage struct {
	Text        string `json:"text"`
	ActionLabel string `json:"action_label"`
}

// GalleryView is the render description of a filtered gallery.
type GalleryView struct {
	Category      string           `json:"category"`
	ScrollTarget  string           `json:"scroll_target"`
	RevealDelayMs int64            `json:"reveal_delay_ms"`
	Cards         []CardVisibility `json:"cards"`
	Message       *FilterMessage   `json:"message,omitempty"`
}

// Filter shows the cards of one category, or all of them for FilterAll.
func (g Gallery) Filter(category string) GalleryView {
	view := GalleryView{
		Category:      category,
		ScrollTarget:  "gallery",
		RevealDelayMs: 800,
		Cards:         make([]CardVisibility, 0, len(g.Cards)),
	}
	for _, c := range g.Cards {
		cv := CardVisibility{Type: c.Type}
		if category == FilterAll || c.Type == category {
			cv.Visible = true
			cv.Animation = "slideInUp 0.5s ease-out"
		}
		view.Cards = append(view.Cards, cv)
	}
	if category != FilterAll {
		view.Message = &FilterMessage{
			Text:        "Showing: " + g.DisplayName(category),
			ActionLabel: "Show All Cars",
		}
	}
	return view
}
