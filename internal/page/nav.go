package page

// Link dimensions
const (
	linkWidth   = 96
	linkHeight  = 28
	linkGap     = 8
	linkMarginX = 24
	linkMarginY = 16
)

// DefaultLinks are the section anchors of the portfolio navigation bar.
var DefaultLinks = []string{"Home", "About", "Projects", "Skills", "Contact"}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

type Link struct {
	Label string
	Rect  Rect
}

// Nav is the row of navigation links along the top-right edge. It turns
// pointer positions into enter/leave transitions.
type Nav struct {
	labels  []string
	links   []Link
	hovered int // -1 when the pointer is over no link
}

func NewNav(labels []string) *Nav {
	return &Nav{labels: labels, hovered: -1}
}

// Layout positions the links for a viewport of the given width. On
// viewports too narrow for the whole row the links start at the left
// margin and overflow to the right.
func (n *Nav) Layout(viewportWidth float64) {
	n.links = n.links[:0]
	total := float64(len(n.labels))*(linkWidth+linkGap) - linkGap
	x := max(viewportWidth-linkMarginX-total, linkMarginX)
	for _, label := range n.labels {
		n.links = append(n.links, Link{
			Label: label,
			Rect:  Rect{X: x, Y: linkMarginY, W: linkWidth, H: linkHeight},
		})
		x += linkWidth + linkGap
	}
	n.hovered = -1
}

func (n *Nav) Links() []Link {
	return n.links
}

// Hovered returns the link under the pointer, if any.
func (n *Nav) Hovered() (Link, bool) {
	if n.hovered < 0 || n.hovered >= len(n.links) {
		return Link{}, false
	}
	return n.links[n.hovered], true
}

// Pointer updates the hovered link and reports transitions.
// Moving straight from one link to another reports neither.
func (n *Nav) Pointer(x, y float64) (entered, left bool) {
	next := -1
	for i, l := range n.links {
		if l.Rect.Contains(x, y) {
			next = i
			break
		}
	}
	prev := n.hovered
	n.hovered = next
	return prev < 0 && next >= 0, prev >= 0 && next < 0
}
