// Package i18n provides internationalization support for the delivery service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		if GetTranslator().Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":                    "Invalid request",
			"error.invalid_request_body":               "Invalid request body",
			"error.invalid_query":                      "Invalid query parameters",
			"error.internal_error":                     "An unexpected error occurred",
			"error.service_unavailable":                "Service temporarily unavailable",
			"error.unauthorized":                       "Unauthorized",
			"error.api_key_required":                   "API key is required",
			"error.invalid_api_key":                    "Invalid API key",
			"error.forbidden":                          "Forbidden",
			"error.not_found":                          "Not found",
			"error.settings_not_found":                 "No active delivery settings",
			"error.rate_limit_exceeded":                "Too many requests, please try again later",
			"error.conflict":                           "Conflict",
			"error.invalid_token":                      "Invalid or expired token",
			"error.token_required":                     "Authentication token is required",
			"error.timeout":                            "The request took too long to complete",
			"error.validation.postcode":                "postcode: is required",
			"error.validation.subtotal":                "subtotal: is required and must not be negative",
			"error.validation.weight_kg":               "weight_kg: must not be negative",
			"error.validation.free_delivery_threshold": "free_delivery_threshold: is required and must not be negative",
		},
		"fr": {
			"error.invalid_request":                    "Requête invalide",
			"error.invalid_request_body":               "Corps de requête invalide",
			"error.invalid_query":                      "Paramètres de requête invalides",
			"error.internal_error":                     "Une erreur inattendue s'est produite",
			"error.service_unavailable":                "Service temporairement indisponible",
			"error.unauthorized":                       "Non autorisé",
			"error.api_key_required":                   "Une clé d'API est requise",
			"error.invalid_api_key":                    "Clé d'API invalide",
			"error.forbidden":                          "Interdit",
			"error.not_found":                          "Introuvable",
			"error.settings_not_found":                 "Aucun paramètre de livraison actif",
			"error.rate_limit_exceeded":                "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":                           "Conflit",
			"error.invalid_token":                      "Jeton invalide ou expiré",
			"error.token_required":                     "Un jeton d'authentification est requis",
			"error.timeout":                            "La requête a pris trop de temps",
			"error.validation.postcode":                "postcode : obligatoire",
			"error.validation.subtotal":                "subtotal : obligatoire et ne doit pas être négatif",
			"error.validation.weight_kg":               "weight_kg : ne doit pas être négatif",
			"error.validation.free_delivery_threshold": "free_delivery_threshold : obligatoire et ne doit pas être négatif",
		},
		"pt": {
			"error.invalid_request":                    "Requisição inválida",
			"error.invalid_request_body":               "Corpo da requisição inválido",
			"error.invalid_query":                      "Parâmetros de consulta inválidos",
			"error.internal_error":                     "Ocorreu um erro inesperado",
			"error.service_unavailable":                "Serviço temporariamente indisponível",
			"error.unauthorized":                       "Não autorizado",
			"error.api_key_required":                   "Chave de API é obrigatória",
			"error.invalid_api_key":                    "Chave de API inválida",
			"error.forbidden":                          "Proibido",
			"error.not_found":                          "Não encontrado",
			"error.settings_not_found":                 "Nenhuma configuração de entrega ativa",
			"error.rate_limit_exceeded":                "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                           "Conflito",
			"error.invalid_token":                      "Token inválido ou expirado",
			"error.token_required":                     "Token de autenticação é obrigatório",
			"error.timeout":                            "A requisição demorou demais para ser concluída",
			"error.validation.postcode":                "postcode: é obrigatório",
			"error.validation.subtotal":                "subtotal: é obrigatório e não pode ser negativo",
			"error.validation.weight_kg":               "weight_kg: não pode ser negativo",
			"error.validation.free_delivery_threshold": "free_delivery_threshold: é obrigatório e não pode ser negativo",
		},
	}
}
