package model

// DocumentKind names the documents the gateway renders for an account.
type DocumentKind string

const (
	DocumentKindTariff   DocumentKind = "tariff"
	DocumentKindContract DocumentKind = "contract"
)

// Document is a rendered account document.
type Document struct {
	URL      string `json:"url"`
	Document string `json:"document"`
}
