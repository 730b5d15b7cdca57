// Package regulation is a read-only reference library of the regulatory
// frameworks a field's governance tag can point at. The content is static
// lookup data; nothing here is ever mutated.
package regulation

import "sort"

// Reference describes one regulatory framework
type Reference struct {
	ID          string
	Title       string
	URL         string
	Description string
}

var references = map[string]Reference{
	"gdpr": {
		ID:          "gdpr",
		Title:       "GDPR (EU)",
		URL:         "https://eur-lex.europa.eu/eli/reg/2016/679/oj",
		Description: "EU data privacy regulation governing personal data, portability, and the right to be forgotten.",
	},
	"lopdgdd": {
		ID:          "lopdgdd",
		Title:       "LOPDGDD (ES)",
		URL:         "https://www.boe.es/eli/es/lo/2018/12/05/3",
		Description: "Spanish implementation of GDPR with additional digital rights protections.",
	},
	"ens": {
		ID:          "ens",
		Title:       "ENS (ES)",
		URL:         "https://www.boe.es/eli/es/rd/2022/05/03/311",
		Description: "Spanish national security framework, mandatory for public sector providers.",
	},
	"lssi-ce": {
		ID:          "lssi-ce",
		Title:       "LSSI-CE (ES)",
		URL:         "https://www.boe.es/eli/es/l/2002/07/11/34",
		Description: "Regulation for e-commerce and information society services in Spain.",
	},
	"pbc-ft": {
		ID:          "pbc-ft",
		Title:       "PBC/FT (ES)",
		URL:         "https://www.boe.es/eli/es/l/2010/04/28/10",
		Description: "Anti-money-laundering compliance standards for financial and real estate data.",
	},
	"bde": {
		ID:          "bde",
		Title:       "BdE Circulars (ES)",
		URL:         "https://www.bde.es/bde/es/secciones/normativas/",
		Description: "Financial reporting and security standards issued by Banco de Espana.",
	},
}

// Get returns the reference registered under the given id
func Get(id string) (Reference, bool) {
	ref, ok := references[id]
	return ref, ok
}

// List returns all references sorted by id
func List() []Reference {
	out := make([]Reference, 0, len(references))
	for _, ref := range references {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the sorted ids of all references
func IDs() []string {
	ids := make([]string, 0, len(references))
	for id := range references {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
