package gallery

import (
	"strings"

	"portfolio-site/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryLabel turns a category tag into its display label ("certifications" -> "Certifications")
func CategoryLabel(category string) string {
	if category == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}

// Filter holds the rendered gallery cards and the filter buttons.
// Selecting a tag only toggles visibility; cards are never dropped.
type Filter struct {
	cards   []domain.GalleryCard
	buttons []domain.FilterButton
	active  string
}

// NewFilter builds one card per item (all visible) and a button for "all"
// plus each distinct category in first-seen order, with "all" active.
func NewFilter(items []domain.MediaItem) *Filter {
	f := &Filter{
		cards:   make([]domain.GalleryCard, 0, len(items)),
		buttons: []domain.FilterButton{{Tag: domain.FilterAll, Label: "All"}},
	}

	seen := map[string]bool{domain.FilterAll: true}
	for _, item := range items {
		f.cards = append(f.cards, domain.GalleryCard{Item: item})
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		f.buttons = append(f.buttons, domain.FilterButton{
			Tag:   item.Category,
			Label: CategoryLabel(item.Category),
		})
	}

	f.Select(domain.FilterAll)
	return f
}

// Select activates tag and shows exactly the cards whose category equals it
// (every card for "all"). Unknown or empty tags fall back to "all" so that one
// button is always active.
func (f *Filter) Select(tag string) {
	if !f.hasButton(tag) {
		tag = domain.FilterAll
	}
	f.active = tag

	for i := range f.buttons {
		f.buttons[i].Active = f.buttons[i].Tag == tag
	}
	for i := range f.cards {
		f.cards[i].Hidden = tag != domain.FilterAll && f.cards[i].Item.Category != tag
	}
}

func (f *Filter) hasButton(tag string) bool {
	for _, b := range f.buttons {
		if b.Tag == tag {
			return true
		}
	}
	return false
}

// Active returns the selected filter tag
func (f *Filter) Active() string {
	return f.active
}

// Visible returns the navigable set: the visible items as lightbox refs, in card order
func (f *Filter) Visible() []domain.MediaRef {
	refs := make([]domain.MediaRef, 0, len(f.cards))
	for _, c := range f.cards {
		if c.Hidden {
			continue
		}
		refs = append(refs, domain.MediaRef{
			Type:   c.Item.Type,
			Source: c.Item.Source(),
			Title:  c.Item.Title,
		})
	}
	return refs
}

// View returns a copy of the current cards and buttons
func (f *Filter) View() *domain.GalleryView {
	cards := make([]domain.GalleryCard, len(f.cards))
	copy(cards, f.cards)
	buttons := make([]domain.FilterButton, len(f.buttons))
	copy(buttons, f.buttons)

	return &domain.GalleryView{
		Filter:  f.active,
		Filters: buttons,
		Cards:   cards,
	}
}
