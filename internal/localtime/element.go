package localtime

// Element is an item of markup carrying a UTC timestamp to display.
type Element struct {
	ID           string `json:"id"`
	RawTimestamp string `json:"rawTimestamp"`
}

// Rendering is the display text derived from an Element. The element's raw
// timestamp is carried unchanged.
type Rendering struct {
	Element
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

type Renderer interface {
	Render(el Element) Rendering
}

// RenderAll renders every element independently, preserving order.
func RenderAll(renderer Renderer, elements []Element) []Rendering {
	renderings := make([]Rendering, len(elements))
	for i, el := range elements {
		renderings[i] = renderer.Render(el)
	}
	return renderings
}

var _ Renderer = &Formatter{}
