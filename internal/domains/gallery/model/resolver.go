package model

import "strings"

// PlaceholderImage is the generic fallback served when nothing else resolves.
const PlaceholderImage = "/images/placeholder.svg"

// keywordImage pairs a lowercase title fragment with the stock image served for it.
// Order matters: the first matching fragment wins.
type keywordImage struct {
	keyword string
	url     string
}

var exactTitleImages = map[string]string{
	"spiral staircase":        "/images/stock/spiral-staircase.jpg",
	"glass balustrade":        "/images/stock/glass-balustrade.jpg",
	"steel pergola":           "/images/stock/steel-pergola.jpg",
	"wrought iron gate":       "/images/stock/wrought-iron-gate.jpg",
	"frameless shower screen": "/images/stock/frameless-shower.jpg",
	"mezzanine floor":         "/images/stock/mezzanine-floor.jpg",
}

var keywordImages = []keywordImage{
	{keyword: "staircase", url: "/images/stock/staircase.jpg"},
	{keyword: "stair", url: "/images/stock/staircase.jpg"},
	{keyword: "balustrade", url: "/images/stock/balustrade.jpg"},
	{keyword: "railing", url: "/images/stock/railing.jpg"},
	{keyword: "gate", url: "/images/stock/gate.jpg"},
	{keyword: "fence", url: "/images/stock/fence.jpg"},
	{keyword: "pergola", url: "/images/stock/pergola.jpg"},
	{keyword: "canopy", url: "/images/stock/canopy.jpg"},
	{keyword: "shower", url: "/images/stock/shower-screen.jpg"},
	{keyword: "splashback", url: "/images/stock/splashback.jpg"},
	{keyword: "mirror", url: "/images/stock/mirror.jpg"},
	{keyword: "balcony", url: "/images/stock/balcony.jpg"},
	{keyword: "mezzanine", url: "/images/stock/mezzanine.jpg"},
	{keyword: "facade", url: "/images/stock/facade.jpg"},
	{keyword: "window", url: "/images/stock/window.jpg"},
	{keyword: "door", url: "/images/stock/door.jpg"},
	{keyword: "table", url: "/images/stock/steel-table.jpg"},
	{keyword: "shelf", url: "/images/stock/steel-shelving.jpg"},
	{keyword: "frame", url: "/images/stock/steel-frame.jpg"},
}

var categoryStockImages = map[string][]string{
	CategoryResidential: {
		"/images/stock/residential-1.jpg",
		"/images/stock/residential-2.jpg",
		"/images/stock/residential-3.jpg",
	},
	CategoryCommercial: {
		"/images/stock/commercial-1.jpg",
		"/images/stock/commercial-2.jpg",
		"/images/stock/commercial-3.jpg",
	},
	CategoryIndustrial: {
		"/images/stock/industrial-1.jpg",
		"/images/stock/industrial-2.jpg",
	},
	CategoryCustom: {
		"/images/stock/custom-1.jpg",
		"/images/stock/custom-2.jpg",
		"/images/stock/custom-3.jpg",
		"/images/stock/custom-4.jpg",
	},
}

// IsPlaceholder reports whether the URL is empty or points at a placeholder asset.
func IsPlaceholder(url string) bool {
	return url == "" || strings.Contains(url, "placeholder")
}

// ResolveImage picks a display image for an item. Precedence: a real uploaded
// image, an exact title match against the curated set, the first matching title
// keyword, then a category stock image selected by index so sibling items in a
// listing rotate through the set deterministically.
func ResolveImage(title, category string, images []string, index int) string {
	if len(images) > 0 && !IsPlaceholder(images[0]) {
		return images[0]
	}

	lowerTitle := strings.ToLower(strings.TrimSpace(title))

	if url, ok := exactTitleImages[lowerTitle]; ok {
		return url
	}

	for _, candidate := range keywordImages {
		if strings.Contains(lowerTitle, candidate.keyword) {
			return candidate.url
		}
	}

	stock, ok := categoryStockImages[category]
	if !ok {
		stock = categoryStockImages[CategoryCustom]
	}

	if len(stock) == 0 {
		return PlaceholderImage
	}

	if index < 0 {
		index = -index
	}

	return stock[index%len(stock)]
}

// ResolveItemImage resolves the display image for an item at the given listing position.
func ResolveItemImage(item GalleryItem, index int) string {
	images := make([]string, 0, len(item.Images)+1)
	if item.CoverImage != "" {
		images = append(images, item.CoverImage)
	}

	images = append(images, item.Images...)

	return ResolveImage(item.Title, item.CategoryOrDefault(), images, index)
}
