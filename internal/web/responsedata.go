package web

import (
	"github.com/goserg/wettkampfwert/internal/web/webpath"
)

type data struct {
	Title  string
	Path   map[string]string
	Errors []string
	Data   map[string]any
}

func newData(title string) data {
	return data{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (m data) WithError(err error) data {
	if err != nil {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}

func (m data) With(key string, value any) data {
	m.Data[key] = value
	return m
}
