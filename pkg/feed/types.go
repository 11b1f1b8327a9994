package feed

import (
	"encoding/xml"
)

// RSS is the root element of an exported feed
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel *Channel `xml:"channel"`
}

// Channel describes the exported card list
type Channel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Description   string      `xml:"description"`
	SelfLink      *SelfLink   `xml:"atom:link"`
	Generator     string      `xml:"generator,omitempty"`
	LastBuildDate string      `xml:"lastBuildDate"`
	Items         []*CardItem `xml:"item"`
}

// SelfLink points to the exported feed itself, prefix is declared on the root element
type SelfLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// CardItem is a single article card in the exported feed
type CardItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        GUID     `xml:"guid"`
	Description string   `xml:"description,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

// GUID of an item, card links are stable so they double as permalinks
type GUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}
