// Package page models the host document: how far it can scroll and where
// the navigation links sit.
package page

// Page is a vertically scrolling document seen through a viewport.
type Page struct {
	contentHeight  float64
	viewportHeight float64
	offset         float64
}

func New(contentHeight float64) *Page {
	return &Page{contentHeight: max(contentHeight, 0)}
}

func (p *Page) ScrollOffset() float64 {
	return p.offset
}

// ScrollableHeight is the distance between the top and the bottom scroll
// positions; zero or negative when the content fits the viewport.
func (p *Page) ScrollableHeight() float64 {
	return p.contentHeight - p.viewportHeight
}

// SetViewportHeight updates the viewport and re-clamps the offset.
func (p *Page) SetViewportHeight(h float64) {
	p.viewportHeight = max(h, 0)
	p.offset = p.clamp(p.offset)
}

// Scroll moves the offset by dy and reports whether it changed.
func (p *Page) Scroll(dy float64) bool {
	return p.ScrollTo(p.offset + dy)
}

// ScrollTo moves to y, clamped to [0, ScrollableHeight].
func (p *Page) ScrollTo(y float64) bool {
	next := p.clamp(y)
	if next == p.offset {
		return false
	}
	p.offset = next
	return true
}

func (p *Page) clamp(y float64) float64 {
	limit := max(p.ScrollableHeight(), 0)
	if y < 0 {
		return 0
	}
	if y > limit {
		return limit
	}
	return y
}
