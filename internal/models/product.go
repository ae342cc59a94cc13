// Package models содержит доменные структуры магазина:
// товары каталога, пользователей и заказы.
package models

// Product представляет товар каталога.
// Каталог фиксируется при старте процесса, поэтому структура
// используется и как позиция корзины: добавление в корзину
// кладет копию товара.
type Product struct {
	ID    int    `json:"id"`    // Идентификатор товара
	Name  string `json:"name"`  // Название
	Price int64  `json:"price"` // Цена в целых рупиях
	Image string `json:"image"` // Путь к изображению
}
