// Package catalog содержит неизменяемый каталог товаров магазина.
// Набор товаров фиксируется при старте процесса и внедряется
// в приложение как readonly-значение, без глобального состояния:
// тесты могут собирать каталог из собственных фикстур.
package catalog

import "github.com/greenharvest/agroshop/internal/models"

// Catalog — упорядоченный набор товаров с индексом по идентификатору.
type Catalog struct {
	items []models.Product
	byID  map[int]models.Product
}

// New создаёт каталог из переданного списка товаров.
// Список копируется, порядок сохраняется.
func New(items []models.Product) *Catalog {
	c := &Catalog{
		items: make([]models.Product, len(items)),
		byID:  make(map[int]models.Product, len(items)),
	}
	copy(c.items, items)
	for _, p := range c.items {
		c.byID[p.ID] = p
	}
	return c
}

// Default возвращает штатный ассортимент удобрений магазина.
func Default() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Urea", Price: 1220, Image: "images/urea.jpg"},
		{ID: 2, Name: "DAP", Price: 1350, Image: "images/DAP.jpg"},
		{ID: 3, Name: "NPK", Price: 1225, Image: "images/npk.jpg"},
		{ID: 4, Name: "Organic Compost", Price: 1575, Image: "images/sakthi.jpg"},
		{ID: 5, Name: "Ammonium Nitrate", Price: 2200, Image: "images/next.jpg"},
		{ID: 6, Name: "Super Phosphate", Price: 2835, Image: "images/super.jpg"},
	}
}

// List возвращает товары в порядке добавления. Возвращается копия,
// изменение результата не влияет на каталог.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Find возвращает товар по идентификатору.
func (c *Catalog) Find(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
