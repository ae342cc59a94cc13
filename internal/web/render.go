// Package web отвечает за рендеринг HTML-страниц магазина.
// Шаблоны встраиваются в бинарник и при старте процесса собираются
// в наборы "layout + страница".
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"index", "products", "cart", "checkout", "thank_you",
	"signup", "login", "dashboard", "about",
}

// Data — данные, передаваемые в шаблон страницы.
type Data struct {
	Title   string          // Заголовок страницы
	User    *session.AuthUser // Авторизованный покупатель, nil для гостя
	Flashes []session.Flash // Одноразовые уведомления
	Content any             // Данные конкретной страницы
}

// Renderer хранит скомпилированные наборы шаблонов страниц.
type Renderer struct {
	pages map[string]*template.Template
	log   *slog.Logger
}

// New компилирует шаблоны всех страниц поверх общего layout.
func New(log *slog.Logger) (*Renderer, error) {
	const op = "web.New"

	funcs := template.FuncMap{
		"rupees": func(v int64) string { return fmt.Sprintf("₹%d", v) },
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: page %s: %w", op, name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, log: log}, nil
}

// HTML рендерит страницу name с данными data.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data Data) {
	t, ok := r.pages[name]
	if !ok {
		r.log.Error("unknown page template", slog.String("page", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		r.log.Error("failed to render page", slog.String("page", name), sl.Err(err))
	}
}

// PageData собирает Data из состояния сессии: покупателя
// и накопленные уведомления, которые после этого считаются показанными.
func PageData(sess *session.State, title string, content any) Data {
	d := Data{Title: title, Content: content}
	if sess != nil {
		d.User = sess.User
		d.Flashes = sess.PopFlashes()
	}
	return d
}
