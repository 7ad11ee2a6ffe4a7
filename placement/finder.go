package placement

import (
	"fmt"
	"math"

	maplabel "github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/collision"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
)

// State is the progress of a Finder.
type State int

const (
	// StateNotStarted means no text variant has been laid out yet.
	StateNotStarted State = iota
	// StateTryingNextTextVariant means a variant was just laid out.
	StateTryingNextTextVariant
	// StatePointPlacement means a point candidate is being tried.
	StatePointPlacement
	// StateLinePlacement means a path candidate is being tried.
	StateLinePlacement
	// StateDoneSuccess means at least one placement was accepted.
	StateDoneSuccess
	// StateDoneFailure means all variants are exhausted.
	StateDoneFailure
)

var stateNames = []string{
	"NotStarted", "TryingNextTextVariant", "PointPlacement",
	"LinePlacement", "DoneSuccess", "DoneFailure",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Marker is an image placed together with the text of a shield.
// Width, Height and Displacement are in device pixels.
type Marker struct {
	Width, Height float64

	// Displacement moves the marker away from its anchor.
	Displacement geom.Point

	// Unlock anchors the marker at the candidate position instead of the
	// displaced text block.
	Unlock bool
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithScaleFactor multiplies all configured lengths by s.
// Values of zero or less are ignored.
func WithScaleFactor(s float64) FinderOption {
	return func(f *Finder) {
		if s > 0 {
			f.scale = s
		}
	}
}

// WithMarker places m together with every label.
func WithMarker(m Marker) FinderOption {
	return func(f *Finder) {
		f.marker = &m
	}
}

// Finder searches label positions for one feature.
//
// A Finder walks through its text variants in order. For every variant it
// lays out the text, after which the caller tries candidate positions
// with FindPointPlacement and FindLinePlacements. NextPosition moves on
// to the next variant. Accepted placements reserve their boxes in the
// shared detector and are collected in Placements.
//
// A Finder is not safe for concurrent use; neither is the detector it
// shares with other finders.
type Finder struct {
	detector *collision.Detector
	extent   geom.Box
	shaper   text.Shaper
	variants []Properties
	scale    float64
	marker   *Marker

	next   int
	state  State
	props  Properties
	layout *text.Layout

	placements []*GlyphPositions
}

// NewFinder returns a finder that tries variants in order. extent is the
// visible canvas; the detector extent may be larger to reserve labels in
// a buffer around it.
func NewFinder(d *collision.Detector, extent geom.Box, shaper text.Shaper, variants []Properties, opts ...FinderOption) *Finder {
	f := &Finder{
		detector: d,
		extent:   extent,
		shaper:   shaper,
		variants: variants,
		scale:    1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetMarker places m together with every later label; nil removes it.
func (f *Finder) SetMarker(m *Marker) { f.marker = m }

// State returns the current state.
func (f *Finder) State() State { return f.state }

// Placements returns the accepted placements in acceptance order.
func (f *Finder) Placements() []*GlyphPositions { return f.placements }

// Properties returns the active variant.
func (f *Finder) Properties() Properties { return f.props }

// Layout returns the layout of the active variant, or nil before the
// first call to NextPosition.
func (f *Finder) Layout() *text.Layout { return f.layout }

// ScaleFactor returns the scale applied to configured lengths.
func (f *Finder) ScaleFactor() float64 { return f.scale }

// NextPosition activates the next text variant and lays out its text.
// It returns false once all variants are exhausted, and keeps returning
// false afterwards. Shaping errors end the search and are returned.
func (f *Finder) NextPosition() (bool, error) {
	if f.state == StateDoneFailure {
		return false, nil
	}
	if f.next >= len(f.variants) {
		f.state = StateDoneFailure
		return false, nil
	}
	f.props = f.variants[f.next]
	f.next++

	layout, err := f.layoutText(f.props)
	if err != nil {
		f.state = StateDoneFailure
		return false, fmt.Errorf("placement: layout %q: %w", f.props.Text, err)
	}
	f.layout = layout
	f.state = StateTryingNextTextVariant
	return true, nil
}

func (f *Finder) layoutText(p Properties) (*text.Layout, error) {
	format := p.Format.Scaled(f.scale)
	lines, err := text.ShapeLines(f.shaper, p.Text, format, p.Layout.WrapWidth*f.scale)
	if err != nil {
		return nil, err
	}
	l := text.NewLayout(p.Layout, f.scale)
	for _, line := range lines {
		l.AddLine(line)
	}
	return l, nil
}

// Spacing returns the distance between label positions on a path of the
// given length, so that the labels are evenly distributed. layoutWidth is
// the width of one label, or zero when placing points along the path.
func (f *Finder) Spacing(pathLength, layoutWidth float64) float64 {
	n := 1
	if s := f.props.Spacing * f.scale; s > 0 {
		n = int(math.Floor(pathLength / (s + layoutWidth)))
	}
	if n <= 0 {
		n = 1
	}
	return pathLength / float64(n)
}

// collision reports whether box may not be used. Line labels fall back to
// the minimum distance for the repeat distance; point labels fall back to
// it for the margin.
func (f *Finder) collision(box geom.Box, line bool) bool {
	p := f.props
	margin := p.Margin
	repeat := p.RepeatDistance
	if line {
		if repeat == 0 {
			repeat = p.MinimumDistance
		}
	} else if margin == 0 {
		margin = p.MinimumDistance
	}
	margin *= f.scale
	repeat *= f.scale

	if !f.detector.Extent().Intersects(box) {
		return true
	}
	if p.AvoidEdges && !f.extent.Contains(box) {
		return true
	}
	if p.MinimumPadding > 0 && !f.extent.Contains(box.Expand(p.MinimumPadding*f.scale)) {
		return true
	}
	if p.AllowOverlap {
		return false
	}
	if p.Text == "" {
		return !f.detector.HasPlacement(box, margin)
	}
	return !f.detector.HasPlacementRepeat(box, margin, p.Text, repeat)
}

// commit reserves the boxes of gp and records it when emit is set.
func (f *Finder) commit(gp *GlyphPositions, emit bool) {
	for _, b := range gp.Boxes {
		f.detector.Insert(b, f.props.Text)
	}
	f.state = StateDoneSuccess
	if emit {
		f.placements = append(f.placements, gp)
		return
	}
	maplabel.Logger().Debug("placement: label outside canvas", "text", f.props.Text)
}
