package schema

import "github.com/gatewayperf/gatewayperf/internal/model"

// Document is a rendered account document.
type Document struct {
	URL      string `json:"url" validate:"required,url"`
	Document string `json:"document"`
}

// ToModel converts the payload to the domain entity.
func (d Document) ToModel() model.Document {
	return model.Document{URL: d.URL, Document: d.Document}
}

// GetTariffDocumentResponse is the body returned by
// GET /api/v1/documents/tariff-document/{account_id}.
type GetTariffDocumentResponse struct {
	Tariff Document `json:"tariff"`
}

// GetContractDocumentResponse is the body returned by
// GET /api/v1/documents/contract-document/{account_id}.
type GetContractDocumentResponse struct {
	Contract Document `json:"contract"`
}

// DocumentFromModel converts a domain document to its payload.
func DocumentFromModel(d model.Document) Document {
	return Document{URL: d.URL, Document: d.Document}
}
