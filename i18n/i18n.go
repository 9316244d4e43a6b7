// Package i18n holds the message catalog used by API responses.
package i18n

import "strings"

// DefaultLang is used when no supported language can be detected.
const DefaultLang = "en"

var catalog = map[string]map[string]string{
	"en": {
		"required":               "Required",
		"too_short":              "Too short",
		"invalid_number":         "Invalid number",
		"invalid_integer":        "Invalid integer",
		"invalid_date":           "Invalid date",
		"must_be_positive":       "Must be greater than zero",
		"must_not_be_negative":   "Must not be negative",
		"out_of_range":           "Out of range",
		"invalid_json":           "Invalid JSON body",
		"db_error":               "Database error",
		"server_error":           "Server error",
		"rate_limited":           "Too many requests",
		"not_found":              "Not found",
		"client.name_too_short":  "Client name must be at least 2 characters",
		"client.invalid_id":      "Invalid client id",
		"client.exists":          "Client already exists",
		"client.created":         "Client added successfully",
		"client.not_found":       "Client not found",
		"item.invalid_number":    "Invalid price or GST",
		"item.name_too_short":    "Item name must be at least 2 characters",
		"item.negative_price":    "Price cannot be negative",
		"item.exists":            "Item already exists",
		"item.created":           "Item added successfully",
		"gst.out_of_range":       "GST percent must be between 0 and 100",
		"invoice.items_required": "At least one line item is required",
		"invoice.invalid_dates":  "Dates must be in YYYY-MM-DD format",
		"invoice.created":        "Invoice created successfully",
		"invoice.not_found":      "Invoice not found",
		"invoice.deleted":        "Invoice deleted",
		"line.name_required":     "Item name is required for all lines",
		"line.invalid_number":    "Invalid quantity/price/GST in items",
		"line.out_of_range":      "Quantity must be >0 and price >=0",
		"line.invalid_item_ref":  "Invalid item_id in items",
	},
	"fr": {
		"required":               "Requis",
		"too_short":              "Trop court",
		"invalid_number":         "Nombre invalide",
		"invalid_integer":        "Entier invalide",
		"invalid_date":           "Date invalide",
		"must_be_positive":       "Doit être supérieur à zéro",
		"must_not_be_negative":   "Ne doit pas être négatif",
		"out_of_range":           "Hors limites",
		"invalid_json":           "Corps JSON invalide",
		"db_error":               "Erreur de base de données",
		"server_error":           "Erreur serveur",
		"rate_limited":           "Trop de requêtes",
		"not_found":              "Introuvable",
		"client.name_too_short":  "Le nom du client doit contenir au moins 2 caractères",
		"client.invalid_id":      "L'identifiant client doit être un entier",
		"client.exists":          "Ce client existe déjà",
		"client.created":         "Client ajouté",
		"client.not_found":       "Client introuvable",
		"item.invalid_number":    "Le prix et la TVA doivent être des nombres",
		"item.name_too_short":    "Le nom de l'article doit contenir au moins 2 caractères",
		"item.negative_price":    "Le prix unitaire ne doit pas être négatif",
		"item.exists":            "Cet article existe déjà",
		"item.created":           "Article ajouté",
		"gst.out_of_range":       "La TVA doit être comprise entre 0 et 100",
		"invoice.items_required": "La facture doit contenir au moins un article",
		"invoice.invalid_dates":  "Les dates doivent utiliser le format AAAA-MM-JJ",
		"invoice.created":        "Facture créée",
		"invoice.not_found":      "Facture introuvable",
		"invoice.deleted":        "Facture supprimée",
		"line.name_required":     "Chaque ligne doit avoir un nom",
		"line.invalid_number":    "Ligne invalide : quantité, prix et TVA doivent être des nombres",
		"line.out_of_range":      "Ligne invalide : la quantité doit être positive et le prix non négatif",
		"line.invalid_item_ref":  "Ligne invalide : item_id doit être un entier positif",
	},
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// T translates code into lang. Unknown languages fall back to DefaultLang and
// unknown codes are returned unchanged.
func T(lang, code string) string {
	if msgs, ok := catalog[lang]; ok {
		if s, ok := msgs[code]; ok {
			return s
		}
	}
	if s, ok := catalog[DefaultLang][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks the first supported language of an Accept-Language
// header, ignoring region and quality values.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if Supported(base) {
			return base
		}
	}
	return DefaultLang
}
