package service

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder image services. {QUERY}, {SEED}, {COLOR} and {TEXT} are filled
// per dish; which service and color get picked is a pure function of the name.
var placeholderServices = []string{
	"https://source.unsplash.com/500x400/?food,{QUERY}",
	"https://picsum.photos/seed/{SEED}/500/400",
	"https://loremflickr.com/500/400/{QUERY}",
	"https://placehold.co/500x400/{COLOR}/white?text={TEXT}",
}

var placeholderColors = []string{
	"e57373", "81c784", "64b5f6", "ffd54f", "ba68c8", "4fc3f7", "aed581",
}

// foodKeywords maps dish-name fragments to image search terms; first match wins.
var foodKeywords = []struct {
	fragment string
	query    string
}{
	{"粥", "porridge,congee"},
	{"汤", "soup"},
	{"面", "noodles"},
	{"饭", "rice"},
	{"鸡", "chicken"},
	{"鱼", "fish"},
	{"虾", "shrimp"},
	{"牛肉", "beef"},
	{"猪肉", "pork"},
	{"羊肉", "mutton"},
	{"沙拉", "salad"},
	{"蛋", "eggs"},
	{"豆腐", "tofu"},
	{"蔬菜", "vegetables"},
	{"水果", "fruits"},
	{"甜点", "dessert"},
	{"饼干", "cookies"},
	{"蛋糕", "cake"},
	{"面包", "bread"},
}

// nameHash derives a stable non-negative hash from the dish name, wrapping at
// 32 bits so the same name always lands on the same service and color.
func nameHash(name string) int64 {
	var hash int32
	for _, r := range name {
		hash = (hash << 5) - hash + int32(r)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return h
}

// GenerateRecipeImageURL produces a stable placeholder image URL for a dish.
// The same name always yields the same URL.
func GenerateRecipeImageURL(name string) string {
	hash := nameHash(name)

	query := "healthy,food"
	for _, kw := range foodKeywords {
		if strings.Contains(name, kw.fragment) {
			query = kw.query
			break
		}
	}

	color := placeholderColors[hash%int64(len(placeholderColors))]
	template := placeholderServices[hash%int64(len(placeholderServices))]

	seed := strings.ToLower(strings.Join(strings.Fields(name), ""))

	replaced := strings.NewReplacer(
		"{QUERY}", query,
		"{SEED}", seed,
		"{COLOR}", color,
		"{TEXT}", url.QueryEscape(name),
	).Replace(template)
	return replaced
}

// FixImageURL repairs an unusable image URL. Empty or junk values get a
// placeholder, relative paths must point into /images/, and http: is upgraded
// to https: when the deployment serves over TLS.
func FixImageURL(rawURL, fallbackName string, secure bool) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" || trimmed == "undefined" || trimmed == "null" {
		return GenerateRecipeImageURL(fallbackName)
	}

	if strings.HasPrefix(trimmed, "/") {
		if !strings.HasPrefix(trimmed, "/images/") || len(trimmed) < 10 {
			return GenerateRecipeImageURL(fallbackName)
		}
		return trimmed
	}

	if secure && strings.HasPrefix(trimmed, "http:") {
		return "https:" + strings.TrimPrefix(trimmed, "http:")
	}
	return trimmed
}

// sanitizeFileName builds the content-addressed image filename for a dish:
// a cleaned name fragment plus the first 8 hex chars of its md5.
func sanitizeFileName(name, md5Hex string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	cleaned := b.String()
	if len(cleaned) > 20 {
		cleaned = cleaned[:20]
	}
	return fmt.Sprintf("%s_%s.png", cleaned, md5Hex[:8])
}
