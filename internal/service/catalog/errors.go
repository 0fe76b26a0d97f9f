package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrEmptyCatalog возвращается при попытке создать пустой каталог
	ErrEmptyCatalog = errors.New("catalog: no services configured")
)
