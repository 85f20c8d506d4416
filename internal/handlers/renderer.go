package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin/render"
)

// Panel ve genel sayfalar base.html ile, vitrin sayfaları
// store_layout.html ve store_partials.html ile birlikte parse edilir.
var (
	layoutPages = []string{
		"home.html",
		"login.html",
		"register.html",
		"forgot_password.html",
		"reset_password.html",
		"academy.html",
		"onboarding.html",
		"dashboard.html",
		"dashboard_products.html",
		"dashboard_orders.html",
		"order_detail.html",
		"payouts.html",
		"settings.html",
		"admin.html",
		"error.html",
	}
	storePages = []string{
		"store_heritage.html",
		"store_chic.html",
		"store_bloom.html",
		"store_deco.html",
		"product.html",
		"checkout.html",
		"order_success.html",
		"about.html",
		"contact.html",
	}
)

// HTMLRenderer, her sayfa için ayrı template setlerini yönetir.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// LoadTemplates, her sayfa için kendi layout'u ile ayrı bir set oluşturur.
func LoadTemplates(fsys fs.FS, funcs template.FuncMap) (*HTMLRenderer, error) {
	templates := map[string]*template.Template{}
	parse := func(name string, files ...string) error {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, files...)
		if err != nil {
			return fmt.Errorf("template %s: %w", name, err)
		}
		templates[name] = tmpl
		return nil
	}

	for _, page := range layoutPages {
		if err := parse(page, page, "base.html"); err != nil {
			return nil, err
		}
	}
	for _, page := range storePages {
		if err := parse(page, page, "store_layout.html", "store_partials.html"); err != nil {
			return nil, err
		}
	}
	log.Printf("LoadTemplates - %d template yüklendi", len(templates))
	return &HTMLRenderer{Templates: templates}, nil
}

// Instance, render işlemini gerçekleştirir.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	tmpl, ok := r.Templates[name]
	if !ok {
		log.Printf("HTMLRenderer.Instance - unknown template: %s", name)
		return render.Data{
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte("template not found: " + name),
		}
	}
	return render.HTML{
		Template: tmpl,
		Data:     data,
	}
}
