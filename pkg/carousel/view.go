package carousel

// Indicator selects how slide markers are drawn
type Indicator string

const (
	// IndicatorLine draws one clickable bar per slide
	IndicatorLine Indicator = "line"
	// IndicatorThumbnail draws a scrollable strip of previews
	IndicatorThumbnail Indicator = "thumbnail"
)

// ParseIndicator maps a string to an Indicator, defaulting to IndicatorLine
func ParseIndicator(s string) Indicator {
	if Indicator(s) == IndicatorThumbnail {
		return IndicatorThumbnail
	}
	return IndicatorLine
}

// Slide is one image of the carousel
type Slide struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Marker is a single indicator of the line or thumbnail strip
type Marker struct {
	Index  int    `json:"index"`
	Src    string `json:"src,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Active bool   `json:"active"`
}

// View is the render model of a carousel at a given active index
type View struct {
	Slides        []Slide   `json:"slides"`
	Active        Slide     `json:"active"`
	ActiveIndex   int       `json:"activeIndex"`
	PrevIndex     int       `json:"prevIndex"`
	NextIndex     int       `json:"nextIndex"`
	Preload       string    `json:"preload,omitempty"`
	HasControls   bool      `json:"hasControls"`
	Mode          Indicator `json:"mode"`
	Markers       []Marker  `json:"markers,omitempty"`
	HideDelayMs   int64     `json:"hideDelayMs"`
	RevealDelayMs int64     `json:"revealDelayMs"`
}

// Empty reports whether there is nothing to show
func (v View) Empty() bool {
	return len(v.Slides) == 0
}

// Line reports whether markers are drawn as lines
func (v View) Line() bool {
	return v.Mode == IndicatorLine
}

// BuildView computes the carousel render model. An out-of-range active index is clamped
// into the slide range. Controls and markers are only present with more than one slide.
func BuildView(slides []Slide, active int, mode Indicator) View {
	view := View{
		Slides:        slides,
		Mode:          ParseIndicator(string(mode)),
		HideDelayMs:   DefaultHideDelay.Milliseconds(),
		RevealDelayMs: DefaultRevealDelay.Milliseconds(),
	}
	n := len(slides)
	if n == 0 {
		return view
	}
	if active < 0 {
		active = 0
	}
	if active >= n {
		active = n - 1
	}

	view.ActiveIndex = active
	view.Active = slides[active]
	view.PrevIndex = active
	view.NextIndex = active
	if n < 2 {
		return view
	}

	view.HasControls = true
	view.PrevIndex = PrevIndex(active, n)
	view.NextIndex = NextIndex(active, n)
	view.Preload = slides[view.NextIndex].Src

	view.Markers = make([]Marker, 0, n)
	for i, slide := range slides {
		marker := Marker{Index: i, Active: i == active}
		if view.Mode == IndicatorThumbnail {
			marker.Src = slide.Src
			marker.Alt = slide.Alt
		}
		view.Markers = append(view.Markers, marker)
	}
	return view
}
