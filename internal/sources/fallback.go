package sources

import (
	"fmt"
	"time"

	"trustcat/internal/catalog"
)

// Baked-in demo data, shown whenever a remote API is unreachable.

type demoFact struct {
	id, title, text, source string
}

var demoFacts = []demoFact{
	{"demo-1", "Cats sleep a lot", "Cats sleep 16-20 hours a day to conserve energy for hunting.", "Veterinary Journal"},
	{"demo-2", "Whisker sensitivity", "A cat's whiskers are highly sensitive and help them sense nearby objects and changes in airflow.", "Feline Behavior Institute"},
	{"demo-3", "Purring mysteries", "Cats purr for many reasons, including contentment and self-healing behaviors.", "Animal Behavior Research"},
	{"demo-4", "Righting reflex", "Cats can jump up to six times their length and usually land on their feet thanks to the righting reflex.", "Feline Behavior Institute"},
	{"demo-5", "Kitten eyes", "All kittens are born with blue eyes; the adult color develops over the first months.", "Veterinary Journal"},
	{"demo-6", "Ancient companions", "Cats were domesticated around nine thousand years ago and were worshipped in ancient Egypt.", "Animal History Review"},
}

// FallbackFacts returns the demo fact collection.
func FallbackFacts() []catalog.Item {
	now := time.Now()
	items := make([]catalog.Item, 0, len(demoFacts))
	for _, f := range demoFacts {
		it := catalog.NewItem(catalog.KindFacts, f.id, f.title, f.text)
		it.Category = FactCategory(f.text)
		it.Date = now
		it.Fields = map[string]string{"source": f.source}
		items = append(items, it)
	}
	return items
}

// FallbackImages returns placeholder image entries.
func FallbackImages() []catalog.Item {
	now := time.Now()
	items := make([]catalog.Item, 0, 6)
	for i := 0; i < 6; i++ {
		url := fmt.Sprintf("https://placekitten.com/%d/300", 400+i)
		it := catalog.NewItem(catalog.KindImages, url, "", "demo")
		it.Category = "demo"
		it.Date = now
		it.Fields = map[string]string{"src": url, "tags": "demo"}
		items = append(items, it)
	}
	return items
}

type demoBreed struct {
	id, name, info, origin, temperament, weight string
}

var demoBreeds = []demoBreed{
	{"sphy", "Sphynx", "Hairless, affectionate and energetic.", "Canada", "Loyal, Curious, Energetic", "3 - 5"},
	{"mcoo", "Maine Coon", "Large, friendly, great for families.", "United States", "Gentle, Adaptable, Intelligent", "5 - 8"},
	{"beng", "Bengal", "Active, loves climbing and play.", "United States", "Alert, Agile, Energetic", "4 - 7"},
}

// FallbackBreeds returns the demo breed collection.
func FallbackBreeds() []catalog.Item {
	now := time.Now()
	items := make([]catalog.Item, 0, len(demoBreeds))
	for _, b := range demoBreeds {
		it := catalog.NewItem(catalog.KindBreeds, b.id, b.name, b.info)
		it.Category = b.origin
		it.Date = now
		it.Fields = map[string]string{
			"origin":      b.origin,
			"temperament": b.temperament,
			"weight":      b.weight,
		}
		items = append(items, it)
	}
	return items
}

// Fallback returns the demo collection for a kind.
func Fallback(kind catalog.Kind) []catalog.Item {
	switch kind {
	case catalog.KindImages:
		return FallbackImages()
	case catalog.KindBreeds:
		return FallbackBreeds()
	default:
		return FallbackFacts()
	}
}
