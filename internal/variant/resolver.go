// internal/variant/resolver.go

// Package variant resolves a product's (color, size) matrix against a partial
// selection. All functions are pure; the variant slice is never mutated.
package variant

import "github.com/Thangttq233/FYP2025-FE/internal/models"

// Selection is a partial pick on the two variant axes. Empty string means
// "not selected".
type Selection struct {
	Color string
	Size  string
}

// Resolution is the outcome of resolving a selection. SizeReassigned signals
// that the requested size did not exist under the requested color and the
// size was silently taken from the fallback variant.
type Resolution struct {
	Variant        *models.Variant
	SizeReassigned bool
}

// Resolve finds the variant matching a selection.
//
// With both axes set, an exact match wins. When the (color, size) pair does
// not exist, the first variant carrying the requested color is the fallback
// and the caller is told the size was reassigned. Color is never switched on
// the caller's behalf.
func Resolve(variants []models.Variant, sel Selection) Resolution {
	if len(variants) == 0 {
		return Resolution{}
	}

	if sel.Color == "" && sel.Size == "" {
		return Resolution{Variant: Default(variants)}
	}

	if sel.Color != "" && sel.Size != "" {
		for i := range variants {
			if variants[i].Color == sel.Color && variants[i].Size == sel.Size {
				return Resolution{Variant: &variants[i]}
			}
		}
	}

	if sel.Color != "" {
		for i := range variants {
			if variants[i].Color == sel.Color {
				return Resolution{Variant: &variants[i], SizeReassigned: sel.Size != ""}
			}
		}
		return Resolution{}
	}

	// Size only: take the first variant carrying it.
	for i := range variants {
		if variants[i].Size == sel.Size {
			return Resolution{Variant: &variants[i]}
		}
	}
	return Resolution{}
}

// Default is the initial selection on load: the first variant in list order.
func Default(variants []models.Variant) *models.Variant {
	if len(variants) == 0 {
		return nil
	}
	return &variants[0]
}

// Colors lists the distinct colors in first-seen order.
func Colors(variants []models.Variant) []string {
	return distinct(variants, func(v models.Variant) string { return v.Color })
}

// Sizes lists the distinct sizes in first-seen order.
func Sizes(variants []models.Variant) []string {
	return distinct(variants, func(v models.Variant) string { return v.Size })
}

func distinct(variants []models.Variant, key func(models.Variant) string) []string {
	seen := make(map[string]struct{}, len(variants))
	var values []string
	for _, v := range variants {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}

// IsSizeAvailable reports whether the size exists under the given color. The
// check is scoped to the currently selected color: an unavailable size must
// be disabled, never cause a silent color switch.
func IsSizeAvailable(variants []models.Variant, color, size string) bool {
	for _, v := range variants {
		if v.Color == color && v.Size == size {
			return true
		}
	}
	return false
}

// ClampQuantity applies a quantity delta within [1, stock]. A delta that
// would leave the range is a no-op, not a saturation: the +/- controls
// disable themselves at the boundary instead of silently clamping.
func ClampQuantity(current, delta, stock int) int {
	next := current + delta
	if next < 1 || next > stock {
		return current
	}
	return next
}
