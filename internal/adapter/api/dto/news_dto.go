package dto

import (
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const (
	newsDateLayout       = "Jan 02, 2006 15:04"
	newsDescriptionLimit = 150
)

// NewsItemResponse é uma notícia formatada para o painel
type NewsItemResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// NewsResponse é o painel "Latest Market News"
type NewsResponse struct {
	Source string             `json:"source"`
	Items  []NewsItemResponse `json:"items"`
}

// ToNewsItemResponse formata data e resumo de uma notícia
func ToNewsItemResponse(item market.NewsItem) NewsItemResponse {
	published := ""
	if !item.PublishedAt.IsZero() {
		published = item.PublishedAt.Format(newsDateLayout)
	}
	return NewsItemResponse{
		Title:       item.Title,
		Description: truncate(item.Description, newsDescriptionLimit),
		URL:         item.URL,
		Source:      item.Source,
		PublishedAt: published,
	}
}

// NewNewsResponse converte a lista do provedor
func NewNewsResponse(source string, items []market.NewsItem) NewsResponse {
	out := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToNewsItemResponse(item))
	}
	return NewsResponse{Source: source, Items: out}
}

// truncate corta s em limit runes e acrescenta "..." quando corta
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
