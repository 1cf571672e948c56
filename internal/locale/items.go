package locale

import (
	"strings"

	"github.com/vzahanych/weather-answer/internal/forecast"
)

// Item is something a user may ask whether to take along.
type Item struct {
	Name         string
	Article      string
	Plural       bool
	Conditions   []forecast.Category
	Temperatures []forecast.TemperatureClass
}

func singular(name, article string, conditions ...forecast.Category) Item {
	return Item{Name: name, Article: article, Conditions: conditions}
}

func plural(name string, conditions ...forecast.Category) Item {
	return Item{Name: name, Plural: true, Conditions: conditions}
}

func (it Item) withTemperature(t ...forecast.TemperatureClass) Item {
	it.Temperatures = append(it.Temperatures, t...)
	return it
}

// ItemCatalog is an immutable item list. The first item of a name wins.
type ItemCatalog struct {
	items []Item
	index map[string]int
}

func NewItemCatalog(items ...Item) *ItemCatalog {
	c := &ItemCatalog{index: make(map[string]int, len(items))}
	for _, it := range items {
		key := strings.ToLower(it.Name)
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

func (c *ItemCatalog) Lookup(name string) (Item, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

func (c *ItemCatalog) Names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}
