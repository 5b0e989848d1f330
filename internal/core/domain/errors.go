package domain

import (
	"errors"
	"fmt"
)

// ErrDetailUnsupported возвращается адаптером, у которого нет страницы
// деталей (или координаты уже есть в поиске). Такой вызов не ретраится.
var ErrDetailUnsupported = errors.New("site does not support detail scraping")

// FetchError - сетевая ошибка или не-2xx статус. Ретраится только
// следующим циклом, внутри цикла повторов нет.
type FetchError struct {
	URL        string
	StatusCode int // 0, если ответа не было
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError - структура страницы не совпала с ожидаемой (сайт поменял
// верстку). Field называет отсутствующее или невалидное поле.
type ParseError struct {
	Site  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Site, e.Field, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Site, e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }
