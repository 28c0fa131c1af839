package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const sitemapCacheKey = "sitemap_xml"

type ISitemapService interface {
	// GetSitemap renders the sitemap XML. Rebuilt at most once per hour.
	GetSitemap(ctx context.Context) (string, error)
}

type sitemapService struct {
	uowFactory unitofwork.RepositoryFactory
	baseURL    string
	cache      *gocache.Cache
}

func NewSitemapService(uowFactory unitofwork.RepositoryFactory, baseURL string) ISitemapService {
	return &sitemapService{
		uowFactory: uowFactory,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cache:      gocache.New(1*time.Hour, 10*time.Minute),
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticRoutes = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "hourly", "1.0"},
	{"/missions", "hourly", "0.9"},
	{"/about", "monthly", "0.5"},
	{"/donate", "monthly", "0.6"},
}

func (s *sitemapService) GetSitemap(ctx context.Context) (string, error) {
	if cached, found := s.cache.Get(sitemapCacheKey); found {
		return cached.(string), nil
	}

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + r.path,
			ChangeFreq: r.changeFreq,
			Priority:   r.priority,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	missions, err := uow.MissionRepository().FindAll(ctx,
		specification.PublicMissions{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return "", err
	}

	for _, m := range missions {
		lastMod := m.CreatedAt
		if m.CompletedAt != nil {
			lastMod = *m.CompletedAt
		}
		freq := "weekly"
		if m.IsLive {
			freq = "hourly"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/missions/%s", s.baseURL, m.Id),
			LastMod:    lastMod.Format("2006-01-02"),
			ChangeFreq: freq,
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	out := xml.Header + string(body)

	s.cache.Set(sitemapCacheKey, out, gocache.DefaultExpiration)
	return out, nil
}
