package service

import (
	"forge/internal/domains/gallery/model"
)

// fallbackCatalogue is the built-in set served when the data store is
// unreachable or genuinely empty. Items carry no uploaded images so the
// resolver assigns stock photography per category.
var fallbackCatalogue = buildFallbackCatalogue()

type fallbackSeed struct {
	id       string
	title    string
	desc     string
	category string
}

func buildFallbackCatalogue() []model.GalleryItem {
	seeds := []fallbackSeed{
		{"fallback-01", "Spiral Staircase", "Powder-coated steel spiral staircase with timber treads.", model.CategoryResidential},
		{"fallback-02", "Glass Balustrade", "Frameless glass balustrade along a first-floor landing.", model.CategoryResidential},
		{"fallback-03", "Frameless Shower Screen", "10mm toughened glass shower screen, brushed fittings.", model.CategoryResidential},
		{"fallback-04", "Steel Pergola", "Box-section pergola with retractable shade canopy.", model.CategoryResidential},
		{"fallback-05", "Shopfront Facade", "Full-height glazed shopfront with steel portal frame.", model.CategoryCommercial},
		{"fallback-06", "Office Partition Screens", "Glazed acoustic partitions for an open-plan office.", model.CategoryCommercial},
		{"fallback-07", "Restaurant Canopy", "Cantilevered entrance canopy in weathering steel.", model.CategoryCommercial},
		{"fallback-08", "Mezzanine Floor", "Structural mezzanine with open-grid decking.", model.CategoryIndustrial},
		{"fallback-09", "Warehouse Guard Railing", "Impact-rated pedestrian guard railing runs.", model.CategoryIndustrial},
		{"fallback-10", "Custom Steel Table", "Blackened steel dining table with glass inlay.", model.CategoryCustom},
		{"fallback-11", "Wrought Iron Gate", "Hand-forged double driveway gate with automation.", model.CategoryCustom},
		{"fallback-12", "Mirror Feature Wall", "Bevelled mirror panels on a steel lattice.", model.CategoryCustom},
	}

	items := make([]model.GalleryItem, len(seeds))

	for i, seed := range seeds {
		category := seed.category
		items[i] = model.GalleryItem{
			ID:          seed.id,
			Title:       seed.title,
			Description: seed.desc,
			Category:    &category,
			Status:      model.StatusPublished,
		}
	}

	return items
}

// fallbackItems filters the catalogue by category. "all" or empty returns
// the whole set.
func fallbackItems(category string) []model.GalleryItem {
	if category == "" || category == model.CategoryAll {
		return fallbackCatalogue
	}

	items := []model.GalleryItem{}

	for _, item := range fallbackCatalogue {
		if item.CategoryOrDefault() == category {
			items = append(items, item)
		}
	}

	return items
}
