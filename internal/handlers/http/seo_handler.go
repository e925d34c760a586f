package http

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

// SlugSource lista os slugs publicáveis no sitemap
type SlugSource interface {
	VerifiedSlugs(ctx context.Context) ([]string, error)
}

// SEOHandler serve robots.txt e sitemap.xml
type SEOHandler struct {
	brands      SlugSource
	frontendURL string
	logger      ports.Logger
}

// NewSEOHandler cria um novo SEOHandler
func NewSEOHandler(brands SlugSource, frontendURL string, logger ports.Logger) *SEOHandler {
	return &SEOHandler{
		brands:      brands,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger,
	}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Robots godoc
// @Summary      robots.txt
// @Tags         seo
// @Produce      plain
// @Success      200  {string}  string
// @Router       /robots.txt [get]
func (h *SEOHandler) Robots(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\nSitemap: " + h.frontendURL + "/sitemap.xml\n")

	c.String(http.StatusOK, b.String())
}

// Sitemap godoc
// @Summary      sitemap.xml com as páginas de marcas verificadas
// @Tags         seo
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func (h *SEOHandler) Sitemap(c *gin.Context) {
	slugs, err := h.brands.VerifiedSlugs(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build sitemap", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: h.frontendURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: h.frontendURL + "/brands", ChangeFreq: "daily", Priority: "0.8"},
	)
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.frontendURL + "/brands/" + url.PathEscape(slug),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.logger.Error("failed to encode sitemap", "error", err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
