package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names accepted by Render.
const (
	PageHome         = "shop_home"
	PageLanding      = "landing"
	PageProduct      = "product_detail"
	PageCategory     = "category_list"
	PageOrderForm    = "create_order"
	PageConfirmation = "order_confirmation"
	PageProfile      = "profile"
	PageContact      = "contact"
	PageError        = "error"
)

var pageNames = []string{
	PageHome, PageLanding, PageProduct, PageCategory, PageOrderForm,
	PageConfirmation, PageProfile, PageContact, PageError,
}

// shared by every page
var baseFiles = []string{"templates/layout.html", "templates/productcard.html"}

type Options struct {
	// BaseURL is the root site; shop links are built by prefixing its host with the shop domain.
	BaseURL  string
	LoginURL string
}

// Renderer draws full pages inside the shared layout. It implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func New(opts Options) (*Renderer, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	funcs := template.FuncMap{
		"css":        cssToken,
		"coord":      coord,
		"pathEscape": url.PathEscape,
		"shopURL":    func(domain string) string { return shopURL(base, domain) },
		"loginURL":   func() string { return opts.LoginURL },
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		files := append(append([]string{}, baseFiles...), "templates/"+name+".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page into a buffer first so a failing template never leaves a half
// written response.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("page %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render page %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

var cssTokenPattern = regexp.MustCompile(`^[#a-zA-Z0-9(),.%\s-]+$`)

// cssToken lets color values such as "#fff" or "rgba(0,0,0,.5)" into the stylesheet and replaces
// anything else with "inherit".
func cssToken(v string) template.CSS {
	if !cssTokenPattern.MatchString(v) {
		return "inherit"
	}
	return template.CSS(v)
}

func coord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 6, 64)
}

func shopURL(base *url.URL, domain string) string {
	if base.Host == "" {
		return "/"
	}
	u := url.URL{Scheme: base.Scheme, Host: domain + "." + base.Host, Path: "/"}
	return u.String()
}
