package gallery

import (
	"strings"

	"portfolio-site/internal/domain"
)

// EmbedHosts are URL fragments of third-party video hosts played in the embed surface
var EmbedHosts = []string{"youtube.com", "youtu.be", "vimeo.com"}

// Key names understood by Navigator.HandleKey
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// IsEmbedded reports whether a video URL must go to the embed surface
func IsEmbedded(src string) bool {
	for _, host := range EmbedHosts {
		if strings.Contains(src, host) {
			return true
		}
	}
	return false
}

// Navigator is the lightbox: Closed until Open, then steps through the
// navigable set captured at open time with wraparound.
type Navigator struct {
	open    bool
	items   []domain.MediaRef
	index   int
	current domain.MediaRef
	surface domain.MediaSurface

	embedSrc      string
	nativeSrc     string
	nativePlaying bool
	scrollLocked  bool
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Open captures the visible items as the navigable set, positions the index on
// src and displays it. A src missing from the set still displays, at index 0.
func (n *Navigator) Open(visible []domain.MediaRef, typ domain.MediaType, src string) {
	n.items = make([]domain.MediaRef, len(visible))
	copy(n.items, visible)

	n.index = 0
	title := ""
	for i, ref := range n.items {
		if ref.Source == src {
			n.index = i
			title = ref.Title
			break
		}
	}

	n.display(domain.MediaRef{Type: typ, Source: src, Title: title})
}

func (n *Navigator) display(ref domain.MediaRef) {
	n.open = true
	n.scrollLocked = true
	n.nativePlaying = false
	n.current = ref
	n.surface = domain.SurfaceNone

	switch ref.Type {
	case domain.MediaImage:
		n.embedSrc = ""
		n.surface = domain.SurfaceImage
	case domain.MediaVideo:
		if IsEmbedded(ref.Source) {
			n.embedSrc = ref.Source
			n.surface = domain.SurfaceEmbed
		} else {
			n.embedSrc = ""
			n.nativeSrc = ref.Source
			n.surface = domain.SurfaceNative
		}
	}
}

// Next moves forward, wrapping from the last item to the first
func (n *Navigator) Next() {
	n.step(1)
}

// Previous moves back, wrapping from the first item to the last
func (n *Navigator) Previous() {
	n.step(-1)
}

func (n *Navigator) step(delta int) {
	size := len(n.items)
	if !n.open || size == 0 {
		return
	}
	n.index = ((n.index+delta)%size + size) % size
	n.display(n.items[n.index])
}

// Play starts native playback of the current local video
func (n *Navigator) Play() {
	if n.open && n.surface == domain.SurfaceNative {
		n.nativePlaying = true
	}
}

// Close pauses local playback, clears the embed source, restores scrolling
// and resets the navigable set.
func (n *Navigator) Close() {
	n.nativePlaying = false
	n.embedSrc = ""
	n.scrollLocked = false

	n.open = false
	n.items = nil
	n.index = 0
	n.current = domain.MediaRef{}
	n.surface = domain.SurfaceNone
	n.nativeSrc = ""
}

// HandleKey applies the keyboard contract and reports whether the key was consumed.
// Keys are ignored while closed.
func (n *Navigator) HandleKey(key string) bool {
	if !n.open {
		return false
	}
	switch key {
	case KeyEscape:
		n.Close()
	case KeyArrowLeft:
		n.Previous()
	case KeyArrowRight:
		n.Next()
	default:
		return false
	}
	return true
}

func (n *Navigator) IsOpen() bool { return n.open }

func (n *Navigator) Index() int { return n.index }

func (n *Navigator) Len() int { return len(n.items) }

func (n *Navigator) Current() domain.MediaRef { return n.current }

// View snapshots the lightbox, including the neighbours Previous/Next would show
func (n *Navigator) View() *domain.LightboxView {
	v := &domain.LightboxView{
		Open:          n.open,
		Surface:       n.surface,
		Index:         n.index,
		Total:         len(n.items),
		ScrollLocked:  n.scrollLocked,
		EmbedSource:   n.embedSrc,
		NativePlaying: n.nativePlaying,
	}
	if !n.open {
		return v
	}

	current := n.current
	v.Current = &current
	if n.surface == domain.SurfaceNative {
		v.NativeSource = n.nativeSrc
	}

	if size := len(n.items); size > 0 {
		prev := n.items[(n.index-1+size)%size]
		next := n.items[(n.index+1)%size]
		v.Prev = &prev
		v.Next = &next
	}
	return v
}
